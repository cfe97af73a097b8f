package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-signal/dsp/signal"
)

type irOptions struct {
	config string
	output string
	length int
	bits   int
}

func newIRCmd() *cobra.Command {
	var o irOptions
	cmd := &cobra.Command{
		Use:   "ir",
		Short: "Render the impulse response of a filter chain to WAV",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runIR(o)
		},
	}
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "Chain description (YAML)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "impulse.wav", "Output WAV file")
	cmd.Flags().IntVar(&o.length, "length", 4096, "Impulse response length in samples")
	cmd.Flags().IntVar(&o.bits, "bits", 24, "Bit depth (16, 24 or 32)")
	return cmd
}

func runIR(o irOptions) error {
	cfg, err := loadChain(o.config)
	if err != nil {
		return err
	}
	chain, err := BuildChain(cfg)
	if err != nil {
		return err
	}
	ir, err := chain.ImpulseResponse(o.length)
	if err != nil {
		return err
	}
	if err := writeWAV(o.output, ir, o.bits); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":    o.output,
		"samples": ir.Length(),
		"bits":    o.bits,
		"peak":    signal.Peak(ir),
	}).Info("wrote impulse response")
	return nil
}

// writeWAV stores s as a mono PCM file. Samples are clipped to [-1, 1].
func writeWAV(path string, s signal.Finite, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth %d", bitDepth)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	rate := int(math.Round(s.SampleRate()))
	enc := wav.NewEncoder(file, rate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           quantize(s.Samples(), bitDepth),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return nil
}

func quantize(x []float64, bitDepth int) []int {
	full := float64(int64(1)<<(bitDepth-1) - 1)
	out := make([]int, len(x))
	for i, v := range x {
		v = max(-1, min(1, v))
		out[i] = int(math.Round(v * full))
	}
	return out
}
