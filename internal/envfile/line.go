package envfile

import (
	"strings"

	"github.com/MKhiriev/go-flex-kit/models"
)

// singleLine keeps a replaced assignment on one line so that merging never
// changes the number of lines in the file.
var singleLine = strings.NewReplacer("\r", "", "\n", "")

// Line is one line of an environment file. A line is an assignment when it
// contains '=' and is not a comment; anything else passes through untouched.
type Line struct {
	Text string
}

// Setting returns the assignment held by the line. ok is false for comments,
// blank lines and lines without '='. The key is the text before the first
// '=' with surrounding whitespace removed; the value is everything after it.
func (l Line) Setting() (setting models.Setting, ok bool) {
	trimmed := strings.TrimSpace(l.Text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return models.Setting{}, false
	}

	key, value, found := strings.Cut(l.Text, "=")
	if !found {
		return models.Setting{}, false
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return models.Setting{}, false
	}

	return models.Setting{Key: key, Value: value}, true
}

// Lines wraps raw text lines.
func Lines(texts []string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Text: t}
	}
	return lines
}

// ParseSettings collects every assignment in lines into [models.Settings].
// When a key is assigned more than once the last assignment wins.
func ParseSettings(lines []string) models.Settings {
	settings := make(models.Settings)
	for _, line := range Lines(lines) {
		if s, ok := line.Setting(); ok {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

// Merge returns lines with every assignment whose key is present in answers
// replaced by key=value. All other lines are returned unchanged and in the
// same order. Answers without a matching line are ignored.
func Merge(lines []string, answers models.Answers) []string {
	merged := make([]string, len(lines))
	for i, line := range Lines(lines) {
		merged[i] = line.Text

		s, ok := line.Setting()
		if !ok {
			continue
		}
		if value, answered := answers[s.Key]; answered {
			merged[i] = s.Key + "=" + singleLine.Replace(value)
		}
	}
	return merged
}
