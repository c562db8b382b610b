package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnxnguyen/newton/field"
	"github.com/johnxnguyen/newton/internal/config"
	"github.com/johnxnguyen/newton/internal/logging"
	"github.com/johnxnguyen/newton/internal/output"
)

func newRootCmd() *cobra.Command {
	var (
		outputDir string
		frames    int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "nbodysim <config-path>",
		Short: "Simulate a 2D n-body system with Barnes-Hut force approximation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames <= 0 {
				return fmt.Errorf("nbodysim: --frames must be a positive integer, got %d", frames)
			}

			logger, err := logging.New(verbose)
			if err != nil {
				return fmt.Errorf("nbodysim: build logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			return run(args[0], outputDir, frames, logger)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "./out", "destination directory for per-frame files")
	cmd.Flags().IntVar(&frames, "frames", 0, "number of steps to simulate")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable development-mode logging")

	return cmd
}

func run(configPath, outputDir string, frames int, logger *zap.Logger) error {
	doc, err := config.Load(configPath, logger)
	if err != nil {
		return err
	}

	f := field.New(doc.FieldParams())
	if err := doc.Populate(f); err != nil {
		return err
	}
	logger.Info("simulation starting",
		zap.Int("bodies", f.Len()),
		zap.Int("frames", frames),
		zap.String("output", outputDir),
	)

	sink := output.NewSink(outputDir, logger)
	if err := sink.WriteFrame(0, f.Positions()); err != nil {
		return err
	}

	for frame := 1; frame <= frames; frame++ {
		f.Step()
		if err := sink.WriteFrame(frame, f.Positions()); err != nil {
			return err
		}
	}

	logger.Info("simulation complete", zap.Int("frames", frames))
	return nil
}
