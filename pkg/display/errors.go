package display

import (
	"errors"
	"fmt"
)

// Kind classifies a display failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindNotRegular
	KindRead
	KindMetadata
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotRegular:
		return "not a regular file"
	case KindRead:
		return "read error"
	case KindMetadata:
		return "metadata error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is; every *Error matches the sentinel of its Kind.
var (
	ErrNotFound   = errors.New("file not found")
	ErrNotRegular = errors.New("not a regular file")
	ErrRead       = errors.New("read error")
	ErrMetadata   = errors.New("metadata error")
)

// Error is returned by Display.Run for every failure it reports.
type Error struct {
	Kind Kind
	Path string
	Err  error // underlying cause, nil for KindNotRegular
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrNotRegular:
		return e.Kind == KindNotRegular
	case ErrRead:
		return e.Kind == KindRead
	case ErrMetadata:
		return e.Kind == KindMetadata
	}
	return false
}

// Message is the single line shown to the user on stderr.
func (e *Error) Message() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("Error: File '%s' does not exist.", e.Path)
	case KindNotRegular:
		return fmt.Sprintf("Error: '%s' is not a regular file.", e.Path)
	case KindRead:
		return fmt.Sprintf("Error reading file: %s", cause(e.Err))
	case KindMetadata:
		return fmt.Sprintf("Error getting file information: %s", cause(e.Err))
	default:
		return "Error: " + e.Error()
	}
}

func cause(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
