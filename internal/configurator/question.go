package configurator

import (
	"github.com/MKhiriev/go-flex-kit/models"
)

// Kind selects how a question is asked.
type Kind int

const (
	// Input is a free-text question.
	Input Kind = iota
	// Confirm is a yes/no question. Its answer is recorded as "true" or
	// "false".
	Confirm
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Confirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Question describes a single prompt and the key its answer is stored under.
type Question struct {
	Key     string
	Kind    Kind
	Message string
	Help    string

	// Default computes the proposed answer from the saved settings. For a
	// Confirm question the result is parsed with strconv.ParseBool and
	// anything unparsable means false. Nil means no default.
	Default func(models.Settings) string

	// Validate checks an Input answer after the default has been applied.
	// The returned error's message is shown before the question is asked
	// again. Nil accepts anything.
	Validate func(string) error

	// When decides from the answers collected so far in the stage whether the
	// question is asked at all. Nil means always.
	When func(models.Answers) bool

	// Transient answers steer later questions but are not written to the
	// file.
	Transient bool
}

// Stage is an ordered list of questions whose answers are persisted together.
type Stage struct {
	Name      string
	Questions []Question
}

func (q Question) defaultValue(settings models.Settings) string {
	if q.Default == nil {
		return ""
	}
	return q.Default(settings)
}

func (q Question) asked(answers models.Answers) bool {
	return q.When == nil || q.When(answers)
}

// savedOr is the common Default: the saved value of key, or fallback.
func savedOr(key, fallback string) func(models.Settings) string {
	return func(s models.Settings) string {
		return s.ValueOr(key, fallback)
	}
}

func answered(key string) func(models.Answers) bool {
	return func(a models.Answers) bool {
		return a.Bool(key)
	}
}
