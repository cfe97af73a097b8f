package main

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-signal/dsp/filter"
	"github.com/cwbudde/algo-signal/dsp/window"
)

// BuildChain turns the configured stages into a filter set.
func BuildChain(cfg *Config) (*filter.Set, error) {
	set, err := filter.NewSet(cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	for i, fc := range cfg.Filters {
		f, err := buildFilter(cfg.SampleRate, fc)
		if err != nil {
			return nil, fmt.Errorf("filters[%d] (%s): %w", i, fc.Type, err)
		}
		f.SetEnabled(!fc.Disabled)
		if err := set.Add(f); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func buildFilter(fs float64, fc FilterConfig) (filter.Filter, error) {
	kind := strings.ToLower(strings.TrimSpace(fc.Type))
	switch kind {
	case "biquad":
		shape, err := filter.ParseBiquadType(fc.Shape)
		if err != nil {
			return nil, err
		}
		return filter.NewBiquad(fs, shape, fc.Frequency, fc.Q, fc.GainDB)
	case "iir":
		return filter.NewIIR(fs, fc.B, fc.A)
	case "gain":
		g, err := filter.NewGain(fs, 1)
		if err != nil {
			return nil, err
		}
		g.SetGainDB(fc.GainDB)
		return g, nil
	case "invert":
		return filter.NewInvert(fs)
	case "delay":
		return filter.NewDelay(fs, fc.Seconds)
	case "dirac":
		return filter.NewDirac(fs)
	case "zero":
		return filter.NewZero(fs)
	case "sinc-lowpass", "sinc-highpass":
		var (
			s   *filter.Sinc
			err error
		)
		if kind == "sinc-lowpass" {
			s, err = filter.NewSincLowpass(fs, fc.Frequency, fc.Taps)
		} else {
			s, err = filter.NewSincHighpass(fs, fc.Frequency, fc.Taps)
		}
		if err != nil {
			return nil, err
		}
		if fc.Window != "" {
			w, err := window.Parse(fc.Window)
			if err != nil {
				return nil, err
			}
			s.SetWindow(w)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown filter type %q", fc.Type)
	}
}
