package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/dsp/series"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

type responseOptions struct {
	config string
	points int
	fmin   float64
	fmax   float64
}

func newResponseCmd() *cobra.Command {
	var o responseOptions
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the frequency response of a filter chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResponse(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "Chain description (YAML)")
	cmd.Flags().IntVar(&o.points, "points", 32, "Number of log-spaced frequencies")
	cmd.Flags().Float64Var(&o.fmin, "fmin", 20, "Lowest frequency in Hz")
	cmd.Flags().Float64Var(&o.fmax, "fmax", 0, "Highest frequency in Hz (default: just below Nyquist)")
	return cmd
}

func runResponse(w io.Writer, o responseOptions) error {
	cfg, err := loadChain(o.config)
	if err != nil {
		return err
	}
	chain, err := BuildChain(cfg)
	if err != nil {
		return err
	}

	fmax := o.fmax
	if fmax <= 0 {
		fmax = 0.49 * cfg.SampleRate
	}
	freqs, err := series.Logarithmic(o.fmin, fmax, o.points)
	if err != nil {
		return fmt.Errorf("frequency grid: %w", err)
	}

	resp, err := chain.FrequencyResponse(freqs)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"points": freqs.Len(),
		"fmin":   o.fmin,
		"fmax":   fmax,
		"effect": chain.HasEffect(),
	}).Debug("computed response")

	return writeResponse(w, resp)
}

func writeResponse(w io.Writer, resp *spectrum.Spectrum) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "freq_hz\tmag_db\tphase_rad\tgroup_delay_ms\t")

	freqs := resp.Frequencies()
	db := resp.MagnitudeDB()
	phase := resp.Phase()
	delay := resp.GroupDelay()
	for i := range freqs.Len() {
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.4f\t%.4f\t\n", freqs.At(i), db[i], phase[i], 1000*delay[i])
	}
	return tw.Flush()
}
