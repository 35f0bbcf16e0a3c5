// Package gifify turns a segment of a video into an animated image by
// driving ffmpeg, optionally burning in subtitles.
package gifify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Monkeyanator/gifify/pkg/logging"
)

// Result is the result from a convert operation.
type Result struct {
	Command  string
	Executed bool
}

// Converter validates requests and hands them to ffmpeg.
type Converter struct {
	// Binary is the media tool to invoke. Empty means DefaultBinary.
	Binary string
	Runner Runner
	// Prober is optional. When set, the input length is checked against the
	// start timestamp before running.
	Prober Prober
	// Out receives the dry-run command. Nil means stdout.
	Out    io.Writer
	Logger *slog.Logger
}

// Convert validates p, builds the ffmpeg command and either prints or runs it.
func (c *Converter) Convert(ctx context.Context, p Params) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	req, err := NewRequest(p)
	if err != nil {
		logger.Debug("request rejected", logging.Error(err))
		return nil, err
	}

	cmd := Build(req, c.Binary)
	logger.Debug("command assembled",
		slog.String("input", req.InputPath),
		slog.String("output", req.OutputPath),
		slog.String("timestamp", req.Timestamp),
		slog.Float64("duration", req.Duration),
		slog.Bool("subtitles", req.HasSubtitles()),
	)

	if req.HasSubtitles() {
		c.previewSubtitles(logger, req)
	}

	result := &Result{Command: cmd.String()}
	if req.DryRun {
		out := c.Out
		if out == nil {
			out = os.Stdout
		}
		if _, err := fmt.Fprintln(out, result.Command); err != nil {
			return nil, fmt.Errorf("write command: %w", err)
		}
		return result, nil
	}

	if c.Prober != nil {
		c.checkInputLength(logger, req)
	}

	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	logger.Info("running ffmpeg", slog.String("command", result.Command))
	if err := runner.Run(ctx, cmd.Binary, cmd.Argv()); err != nil {
		return nil, err
	}
	result.Executed = true
	logger.Info("conversion complete", slog.String("output", req.OutputPath))
	return result, nil
}

func (c *Converter) previewSubtitles(logger *slog.Logger, req Request) {
	cues, err := CountCues(req.SubtitlesPath, req.Start(), req.Length())
	if err != nil {
		logger.Debug("subtitle preview skipped", logging.Error(err))
		return
	}
	logger.Debug("subtitle cues in clip window", slog.Int("cues", cues))
	if cues == 0 {
		logger.Warn("no subtitle cues fall inside the clip window",
			slog.String("subtitles", req.SubtitlesPath),
			slog.String("timestamp", req.Timestamp),
		)
	}
}

func (c *Converter) checkInputLength(logger *slog.Logger, req Request) {
	length, err := c.Prober.Probe(req.InputPath)
	if err != nil {
		logger.Debug("input probe skipped", logging.Error(err))
		return
	}
	if req.Start() >= length {
		logger.Warn("start timestamp is past the end of the input",
			slog.String("timestamp", req.Timestamp),
			slog.Duration("input_length", length),
		)
	}
}
