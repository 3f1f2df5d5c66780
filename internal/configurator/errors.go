package configurator

import "errors"

var (
	// ErrEnvFileMissing is returned by [Configurator.Check] when the .env file
	// has not been created yet.
	ErrEnvFileMissing = errors.New("env file is missing")
	// ErrUnknownQuestionKind is returned by [Ask] for a question whose kind
	// has no driver counterpart.
	ErrUnknownQuestionKind = errors.New("unknown question kind")
)
