package interp

// cursor walks an ascending x array in one direction. seek never moves
// backwards, so a pass over ascending targets costs O(len(x)+len(targets)).
type cursor struct {
	x []float64
	y []float64
	j int
}

// seek positions the cursor on the interval [x[j], x[j+1]] containing t.
// Requires len(x) >= 2.
func (c *cursor) seek(t float64) {
	for c.j < len(c.x)-2 && c.x[c.j+1] < t {
		c.j++
	}
}

// linear evaluates the current interval at t.
func (c *cursor) linear(t float64) float64 {
	x0, x1 := c.x[c.j], c.x[c.j+1]
	y0, y1 := c.y[c.j], c.y[c.j+1]
	if x1 == x0 {
		return y0
	}
	return y0 + (t-x0)/(x1-x0)*(y1-y0)
}

func linearTo(dst, x, y, targets []float64) {
	c := cursor{x: x, y: y}
	for i, t := range targets {
		c.seek(t)
		dst[i] = c.linear(t)
	}
}
