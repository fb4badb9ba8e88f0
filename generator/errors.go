package generator

import "fmt"

// GenerationError marks a failed generation attempt. It is never fatal to the
// session: the caller keeps any prior result and may simply try again.
type GenerationError struct {
	Kind string // "backend" or "parse"
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func backendError(err error) *GenerationError {
	return &GenerationError{Kind: "backend", Err: err}
}

func parseError(err error) *GenerationError {
	return &GenerationError{Kind: "parse", Err: err}
}
