package proto

import (
	"fmt"
)

// ArgumentError reports a wrong invocation, it is answered with usage, not a failure.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %s", e.Reason)
}

// DecodeError reports a source that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s failed: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a failure to encode or write the output.
type EncodeError struct {
	Target string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s failed: %v", e.Target, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
