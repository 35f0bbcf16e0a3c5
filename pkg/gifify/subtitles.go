package gifify

import (
	"fmt"
	"time"

	"github.com/asticode/go-astisub"
)

// CountCues returns how many subtitle cues in the file at path are on screen
// at some point during [start, start+length).
func CountCues(path string, start, length time.Duration) (int, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read subtitle track: %w", err)
	}

	end := start + length
	count := 0
	for _, item := range subs.Items {
		if item.EndAt > start && item.StartAt < end {
			count++
		}
	}
	return count, nil
}
