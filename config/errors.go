package config

import (
	"errors"
	"fmt"
)

// ErrUsage is the sentinel category for every malformed-command-line error
// (spec §7's UsageError class); branch on it with errors.Is.
var ErrUsage = errors.New("config: usage error")

// UsageError names the offending flag and carries a canned usage string,
// per spec §7.
type UsageError struct {
	Flag string
	Msg  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("config: flag %s: %s", e.Flag, e.Msg)
}

// Unwrap lets errors.Is(err, ErrUsage) succeed for any *UsageError.
func (e *UsageError) Unwrap() error { return ErrUsage }
