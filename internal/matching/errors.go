package matching

import "errors"

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

const (
	FieldJobDescription = "jobDescription"
	FieldResumeText     = "resumeText"
)

// InvalidInputError reports an input that is empty after trimming whitespace.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Field + " is required"
}

// Is reports ErrInvalidInput as a match so callers can use errors.Is.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
