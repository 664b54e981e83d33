package chroma

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is matched by every construction failure.
//
//	if errors.Is(err, chroma.ErrInvalidArguments) { ... }
var ErrInvalidArguments = errors.New("chroma: constructor arguments not recognized")

// ArgumentsError reports arguments that match none of the shapes New
// accepts. Args holds the raw arguments; Err, when set, is the underlying
// parse failure.
type ArgumentsError struct {
	Args []any
	Err  error
}

func (e *ArgumentsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %#v: %v", ErrInvalidArguments, e.Args, e.Err)
	}
	return fmt.Sprintf("%v: %#v", ErrInvalidArguments, e.Args)
}

func (e *ArgumentsError) Is(target error) bool {
	return target == ErrInvalidArguments
}

func (e *ArgumentsError) Unwrap() error {
	return e.Err
}
