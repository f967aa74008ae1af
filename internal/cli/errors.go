package cli

import (
	"errors"
	"fmt"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// invalidArgError is a flag or argument that could not be used.
type invalidArgError struct {
	name  string
	value string
	err   error
}

func (e invalidArgError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.name, e.value, e.err)
}

func (e invalidArgError) Unwrap() error { return e.err }

func errInvalidArg(name, value string, err error) error {
	return invalidArgError{name: name, value: value, err: err}
}

var errOutOfRange = errors.New("out of range")
