package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Monkeyanator/gifify/pkg/config"
	"github.com/Monkeyanator/gifify/pkg/gifify"
	"github.com/Monkeyanator/gifify/pkg/logging"
)

// dependencies lets tests replace the process-facing collaborators.
type dependencies struct {
	runner gifify.Runner
	prober gifify.Prober
}

func newRootCommand(stdout, stderr io.Writer, deps dependencies) *cobra.Command {
	var params gifify.Params
	var configFlag string
	var logLevel string
	var logFormat string

	cmd := &cobra.Command{
		Use:           "gifify",
		Short:         "Convert a movie to GIF with optional subtitles",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Logging.Format = logFormat
			}
			if !cmd.Flags().Changed("overwrite") {
				params.Overwrite = cfg.FFmpeg.Overwrite
			}

			logger, err := logging.New(stderr, logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			prober := deps.prober
			if prober == nil && cfg.FFmpeg.Probe {
				prober = gifify.FFProbe{}
			}
			runner := deps.runner
			if runner == nil {
				runner = gifify.ExecRunner{}
			}

			converter := &gifify.Converter{
				Binary: cfg.FFmpeg.Binary,
				Runner: runner,
				Prober: prober,
				Out:    stdout,
				Logger: logger,
			}
			_, err = converter.Convert(cmd.Context(), params)
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&params.InputPath, "input", "i", "", "input video file")
	flags.StringVarP(&params.OutputPath, "output", "o", "", "output GIF file")
	flags.StringVarP(&params.SubtitlesPath, "subtitles", "s", "", "file containing subtitles")
	flags.StringVarP(&params.Timestamp, "timestamp", "t", gifify.DefaultTimestamp, "timestamp to start GIF from in HH:MM:SS format")
	flags.StringVarP(&params.Duration, "duration", "d", gifify.DefaultDuration, "length of GIF in seconds")
	flags.BoolVarP(&params.DryRun, "dry_run", "n", false, "print the ffmpeg command instead of running it")
	flags.BoolVarP(&params.Overwrite, "overwrite", "y", false, "overwrite the output file if it exists")
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (auto, console, json)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
