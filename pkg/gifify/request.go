package gifify

import (
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimestamp is where a clip starts when no timestamp is given.
	DefaultTimestamp = "00:00:00"
	// DefaultDuration is the clip length in seconds when none is given.
	DefaultDuration = "5"
)

var timestampPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrSubtitlesNotFound = errors.New("subtitles file not found")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrInvalidDuration   = errors.New("invalid duration")
)

// ValidationError reports a user-correctable problem with the conversion
// parameters. Message is what gets shown to the user.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

// Params holds the raw, unvalidated conversion parameters.
type Params struct {
	InputPath     string
	OutputPath    string
	SubtitlesPath string
	Timestamp     string
	Duration      string
	DryRun        bool
	Overwrite     bool
}

// Request is a validated conversion request.
type Request struct {
	InputPath     string
	OutputPath    string
	SubtitlesPath string
	Timestamp     string
	Duration      float64
	DryRun        bool
	Overwrite     bool
}

// HasSubtitles reports whether subtitles should be burned in.
func (r Request) HasSubtitles() bool {
	return r.SubtitlesPath != ""
}

// Start returns the timestamp as an offset from the beginning of the input.
func (r Request) Start() time.Duration {
	return parseClock(r.Timestamp)
}

// Length returns the clip duration.
func (r Request) Length() time.Duration {
	return time.Duration(r.Duration * float64(time.Second))
}

// NewRequest validates p and returns the resulting request. Checks run in a
// fixed order and the first failure is returned.
func NewRequest(p Params) (Request, error) {
	timestamp := p.Timestamp
	if timestamp == "" {
		timestamp = DefaultTimestamp
	}
	rawDuration := strings.TrimSpace(p.Duration)
	if rawDuration == "" {
		rawDuration = DefaultDuration
	}

	if !exists(p.InputPath) {
		return Request{}, &ValidationError{
			Kind:    ErrInputNotFound,
			Message: fmt.Sprintf("Input file (%s) not found", p.InputPath),
		}
	}

	if p.SubtitlesPath != "" && !exists(p.SubtitlesPath) {
		return Request{}, &ValidationError{
			Kind:    ErrSubtitlesNotFound,
			Message: fmt.Sprintf("Subtitles file (%s) specified, but not found", p.SubtitlesPath),
		}
	}

	if !timestampPattern.MatchString(timestamp) {
		return Request{}, &ValidationError{
			Kind:    ErrInvalidTimestamp,
			Message: fmt.Sprintf("Invalid timestamp (%s), expected HH:MM:SS", timestamp),
		}
	}

	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return Request{}, &ValidationError{
			Kind:    ErrInvalidDuration,
			Message: "Duration must be a number",
		}
	}

	return Request{
		InputPath:     p.InputPath,
		OutputPath:    p.OutputPath,
		SubtitlesPath: p.SubtitlesPath,
		Timestamp:     timestamp,
		Duration:      duration,
		DryRun:        p.DryRun,
		Overwrite:     p.Overwrite,
	}, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// parseClock converts an already validated HH:MM:SS string.
func parseClock(value string) time.Duration {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0
	}
	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0
		}
		total += time.Duration(n) * units[i]
	}
	return total
}
