package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/dsp/interp"
)

type interpOptions struct {
	method string
	x      []float64
	y      []float64
	target []float64
}

func newInterpCmd() *cobra.Command {
	var o interpOptions
	cmd := &cobra.Command{
		Use:   "interp",
		Short: "Interpolate y(x) at target points",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInterp(cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVarP(&o.method, "method", "m", "linear", "Interpolation method")
	cmd.Flags().Float64SliceVar(&o.x, "x", nil, "Ascending source x values")
	cmd.Flags().Float64SliceVar(&o.y, "y", nil, "Source y values")
	cmd.Flags().Float64SliceVar(&o.target, "target", nil, "Target x values")
	return cmd
}

func runInterp(w io.Writer, o interpOptions) error {
	m, err := interp.ParseMethod(o.method)
	if err != nil {
		return err
	}
	ys, err := interp.Interpolate(o.x, o.y, o.target, interp.WithMethod(m))
	if err != nil {
		return err
	}
	parts := make([]string, len(ys))
	for i, v := range ys {
		parts[i] = strconv.FormatFloat(v, 'g', 8, 64)
	}
	_, err = fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
