package dataset

import (
	"fmt"

	"cuelang.org/go/cue/token"
)

// Load error codes.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeReadFailed        = "E002" // File read error
	ErrCodeUnsupportedFormat = "E003" // Unknown file extension
	ErrCodeParseFailed       = "E004" // Syntax or decode error
	ErrCodeNotFound          = "E005" // Path not found
	ErrCodeSchemaViolation   = "E006" // CUE schema rejected the data
)

// Validation error codes (E100-E199).
const (
	ErrMissingID      = "E101" // dinosaurId is empty
	ErrDuplicateID    = "E102" // dinosaurId repeated
	ErrInvalidMya     = "E103" // mya must have 1 or 2 elements
	ErrNegativeLength = "E104" // lengthInMeters < 0
	ErrMissingName    = "E105" // name is empty
)

// LoadError represents an error that occurred while reading a dataset file.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationError describes a record that breaks a dataset invariant.
type ValidationError struct {
	Index   int    `json:"index"`
	ID      string `json:"id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("[%s] dinosaurs[%d] (%s): %s: %s", e.Code, e.Index, e.ID, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] dinosaurs[%d]: %s: %s", e.Code, e.Index, e.Field, e.Message)
}
