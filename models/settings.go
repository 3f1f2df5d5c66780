package models

import "strconv"

// Setting is a single key=value assignment of the environment file.
type Setting struct {
	Key   string
	Value string
}

// Settings holds the values already saved in the environment file, keyed by
// variable name. A nil Settings is valid and behaves as an empty set, which
// is the case when the file is created from scratch.
type Settings map[string]string

// Get returns the saved value for key and whether it was present.
func (s Settings) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s[key]
	return v, ok
}

// ValueOr returns the saved value for key, or fallback when the key is
// missing or saved with an empty value.
func (s Settings) ValueOr(key, fallback string) string {
	if v, ok := s.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

// BoolOr interprets the saved value for key as a boolean. Missing, empty and
// unparsable values yield fallback.
func (s Settings) BoolOr(key string, fallback bool) bool {
	v, ok := s.Get(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Answers holds the values collected during one prompt stage, keyed by
// question key. Confirm answers are stored as "true" or "false".
type Answers map[string]string

// Bool reports whether the answer for key is a true confirmation.
func (a Answers) Bool(key string) bool {
	b, err := strconv.ParseBool(a[key])
	return err == nil && b
}
