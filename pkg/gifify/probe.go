package gifify

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Prober reports the playable length of a media file.
type Prober interface {
	Probe(path string) (time.Duration, error)
}

// FFProbe inspects media with ffprobe.
type FFProbe struct{}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe runs ffprobe against path and returns the container duration.
func (FFProbe) Probe(path string) (time.Duration, error) {
	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("failed probing %s: %w", path, err)
	}
	return parseProbeDuration(raw)
}

func parseProbeDuration(raw string) (time.Duration, error) {
	var out probeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}
	value := strings.TrimSpace(out.Format.Duration)
	if value == "" {
		return 0, fmt.Errorf("ffprobe parse: missing format duration")
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe parse duration %q: %w", value, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
