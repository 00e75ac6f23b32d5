package template

import (
	"errors"
	"fmt"
)

// ErrImbalancedBrackets reports malformed placeholder syntax: an unmatched
// closing brace, a nested opening brace inside a key, or a placeholder left
// open at the end of the template. Escape literal braces with {{ and }}.
var ErrImbalancedBrackets = errors.New("template: imbalanced brackets in template")

// ErrOverflow reports that an internal index or capacity computation exceeded
// the addressable range instead of silently wrapping.
var ErrOverflow = errors.New("template: integer overflow in index arithmetic")

// UnknownKeyError is returned by Compile when a placeholder references a key
// with no entry in the registry. Key holds the exact text between the braces.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("template: unknown key %q", e.Key)
}

// NoDataError is returned by Render when the callback bound to Key reported
// that no value was available for the current data.
type NoDataError struct {
	Key string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("template: no data for key %q", e.Key)
}

// WriteError wraps a failure of the output sink a render call was writing to.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("template: write rendered output: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
