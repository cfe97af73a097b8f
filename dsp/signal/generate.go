package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// uniformNoise returns n samples drawn uniformly from [-amplitude, amplitude]
// by a generator seeded with seed.
func uniformNoise(amplitude float64, n int, seed int64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise length %d: %w", n, core.ErrInvalidParameter)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude %v: %w", amplitude, core.ErrInvalidParameter)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak %v: %w", targetPeak, core.ErrInvalidParameter)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize: %w", core.ErrEmptyInput)
	}

	maxAbs := floats.Norm(data, math.Inf(1))

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/maxAbs, data)
	return out, nil
}
