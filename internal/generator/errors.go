package generator

import "fmt"

// Kind distinguishes the failure classes a generator can produce.
type Kind int

const (
	// KindUnknownType means the task's type has no registered generator.
	KindUnknownType Kind = iota + 1
	// KindRender means template or JSON rendering failed.
	KindRender
	// KindIO means creating directories or writing the artifact failed.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindUnknownType:
		return "unknown_type"
	case KindRender:
		return "render"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a task-level generation failure. Errors never escape the
// generator as panics; they are folded into failed Results by Generate.
type Error struct {
	Kind Kind
	Task string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func renderErr(task string, err error) *Error {
	return &Error{Kind: KindRender, Task: task, Err: fmt.Errorf("render: %w", err)}
}

func ioErr(task string, err error) *Error {
	return &Error{Kind: KindIO, Task: task, Err: err}
}
