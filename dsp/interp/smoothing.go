package interp

import (
	"github.com/cwbudde/algo-signal/dsp/window"
)

// smooth computes a window-weighted average of the raw samples within
// width/2 of every target. Where fewer than two samples contribute, or the
// weights vanish, the two nearest samples are interpolated linearly.
func smooth(dst, x, y, targets []float64, width float64, shape window.Type) {
	if width <= 0 {
		width = 2 * (x[len(x)-1] - x[0]) / float64(len(x)-1)
	}
	half := width / 2

	c := cursor{x: x, y: y}
	lo := 0
	for i, t := range targets {
		for lo < len(x) && x[lo] < t-half {
			lo++
		}

		var sum, norm float64
		count := 0
		for k := lo; k < len(x) && x[k] <= t+half; k++ {
			w := window.At(shape, (x[k]-t)/width+0.5)
			sum += w * y[k]
			norm += w
			count++
		}

		c.seek(t)
		if count < 2 || norm < 1e-12 {
			dst[i] = c.linear(t)
			continue
		}
		dst[i] = sum / norm
	}
}
