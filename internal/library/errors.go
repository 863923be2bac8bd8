package library

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is.
var (
	ErrConfig = errors.New("configuration error")
	ErrIO     = errors.New("i/o error")
)

// ConfigError reports a precondition failure detected before any mutation:
// a missing template, a missing source, or a destination that already exists.
type ConfigError struct {
	Reason string
	Path   string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

// Is lets errors.Is(err, ErrConfig) match any *ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// IOError reports a filesystem failure during a copy or write. Earlier
// steps are not rolled back.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match any *IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// WrapIO returns nil for a nil err, and err unchanged when it already
// carries a typed library error.
func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrIO) || errors.Is(err, ErrConfig) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
