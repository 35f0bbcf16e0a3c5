package gifify

import (
	"strconv"
	"strings"
)

// DefaultBinary is the name the media tool is looked up by on PATH.
const DefaultBinary = "ffmpeg"

type token struct {
	value  string
	quoted bool
}

// Command is the assembled ffmpeg invocation. The same tokens serialize two
// ways: Argv for execution and String for display.
type Command struct {
	Binary string
	tokens []token
}

// Build assembles the argument list for req. Subtitles, when present, come
// first as a -vf pair, followed by -ss, -t, -i and the output path.
func Build(req Request, binary string) Command {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}

	var tokens []token
	if req.HasSubtitles() {
		tokens = append(tokens,
			token{value: "-vf"},
			token{value: subtitlesFilter(req.SubtitlesPath), quoted: true},
		)
	}
	tokens = append(tokens,
		token{value: "-ss"},
		token{value: req.Timestamp},
		token{value: "-t"},
		token{value: formatSeconds(req.Duration)},
		token{value: "-i"},
		token{value: req.InputPath, quoted: true},
	)
	if req.Overwrite {
		tokens = append(tokens, token{value: "-y"})
	}
	tokens = append(tokens, token{value: req.OutputPath, quoted: true})

	return Command{Binary: binary, tokens: tokens}
}

// Argv returns the arguments as discrete, unquoted values, excluding the
// binary name.
func (c Command) Argv() []string {
	args := make([]string, 0, len(c.tokens))
	for _, t := range c.tokens {
		args = append(args, t.value)
	}
	return args
}

// String renders the command for display, quoting path values.
func (c Command) String() string {
	parts := make([]string, 0, len(c.tokens)+1)
	parts = append(parts, c.Binary)
	for _, t := range c.tokens {
		if t.quoted {
			parts = append(parts, `"`+t.value+`"`)
			continue
		}
		parts = append(parts, t.value)
	}
	return strings.Join(parts, " ")
}

// subtitlesFilter builds the ffmpeg filter expression. The single quotes
// belong to ffmpeg's filter syntax, not the shell.
func subtitlesFilter(path string) string {
	return "subtitles='" + path + "'"
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
