package canvas

import (
	"errors"
	"fmt"
)

// Error kinds reported by a seeding run.
var (
	// ErrNotFound means the source image path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDecode means the source file exists but is not a decodable image.
	ErrDecode = errors.New("decode error")

	// ErrInvalidConfiguration means the run was configured with values no
	// stage can work with, such as an empty palette or a zero-sized grid.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrWrite means an output artifact could not be written.
	ErrWrite = errors.New("write error")
)

// Error wraps a failure with its kind, the operation that failed and the
// path involved, if any.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Op)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is and
// errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Invalidf builds an InvalidConfiguration error.
func Invalidf(op, format string, args ...any) error {
	return &Error{Kind: ErrInvalidConfiguration, Op: op, Err: fmt.Errorf(format, args...)}
}
