package interp

// adaptive picks a strategy per target from the number of raw samples
// strictly between the previous target and the current one:
//
//	>= 3  mean of those samples
//	== 2  linear interpolation
//	<  2  cubic spline (or linear when spline is disabled)
//
// targets[first:] are written to dst. Earlier targets lie below the domain
// and only bound the count of targets[first]. The very first target has no
// predecessor and always takes the sparse path.
// The spline is built at most once per call.
func adaptive(dst, x, y, targets []float64, first int, useSpline bool) {
	var spline *CubicSpline

	c := cursor{x: x, y: y}
	k := 0
	for i := first; i < len(targets); i++ {
		t := targets[i]
		var sum float64
		count := 0
		if i > 0 {
			prev := targets[i-1]
			for k < len(x) && x[k] <= prev {
				k++
			}
			for j := k; j < len(x) && x[j] < t; j++ {
				sum += y[j]
				count++
			}
		}

		c.seek(t)
		j := i - first
		switch {
		case count >= 3:
			dst[j] = sum / float64(count)
		case count == 2:
			dst[j] = c.linear(t)
		case useSpline:
			if spline == nil {
				spline = NewCubicSpline(x, y)
			}
			dst[j] = spline.At(t)
		default:
			dst[j] = c.linear(t)
		}
	}
}
