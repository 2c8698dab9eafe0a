package fetcher

import (
	"errors"
	"fmt"
)

// Failure kinds reported by Fetch. Match them with errors.Is.
var (
	ErrTransport = errors.New("transport failure")
	ErrStatus    = errors.New("unexpected status")
	ErrDecode    = errors.New("malformed json")
	// ErrShape marks a payload that decoded fine but is not laid out the
	// way post-processing expects.
	ErrShape = errors.New("unexpected payload shape")
)

// Error describes why a single upstream call produced no data.
type Error struct {
	Kind   error
	Source string
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Err == nil:
		return fmt.Sprintf("%s %s: %v %d", e.Source, e.URL, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v: %v", e.Source, e.URL, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Source, e.URL, e.Kind)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func shapeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}
