package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue reports a write value that cannot be accumulated.
	ErrInvalidValue = errors.New("invalid value")
	// ErrStructuralConflict reports a write that would nest beneath a
	// scalar leaf, or write a scalar over an existing node.
	ErrStructuralConflict = errors.New("structural conflict")
)

// ValueError is the typed form of ErrInvalidValue.
type ValueError struct {
	Path  string // dotted path of the attempted write
	Value any
}

func (e *ValueError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid value at %s: %v (%T)", e.Path, e.Value, e.Value)
	}
	return fmt.Sprintf("invalid value: %v (%T)", e.Value, e.Value)
}

func (e *ValueError) Unwrap() error { return ErrInvalidValue }

// StructuralError is the typed form of ErrStructuralConflict.
type StructuralError struct {
	Path string // dotted path of the conflicting element
	Key  string // segment at which the conflict occurred
	Node bool   // true when a scalar write hit an existing node
}

func (e *StructuralError) Error() string {
	if e.Node {
		return fmt.Sprintf("cannot write scalar over node at %s", e.Path)
	}
	return fmt.Sprintf("cannot nest under scalar leaf at %s", e.Path)
}

func (e *StructuralError) Unwrap() error { return ErrStructuralConflict }
