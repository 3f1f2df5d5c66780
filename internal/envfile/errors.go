package envfile

import "errors"

var (
	// ErrReadEnvFile is returned when the environment file cannot be read.
	ErrReadEnvFile = errors.New("error reading env file")
	// ErrWriteEnvFile is returned when the environment file cannot be
	// replaced with new contents.
	ErrWriteEnvFile = errors.New("error writing env file")
	// ErrCreateEnvFile is returned when the environment file cannot be
	// created from its template.
	ErrCreateEnvFile = errors.New("error creating env file")
)
