package keywords

import "fmt"

// AnnotationError represents a failure of the linguistic annotator.
type AnnotationError struct {
	Message string
	Cause   error
}

func (e *AnnotationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("annotation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("annotation failed: %s", e.Message)
}

func (e *AnnotationError) Unwrap() error {
	return e.Cause
}
