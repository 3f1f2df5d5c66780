package client

import "errors"

// ErrUnknownPromptDriver is returned for a prompt driver name that has no
// implementation.
var ErrUnknownPromptDriver = errors.New("unknown prompt driver")
