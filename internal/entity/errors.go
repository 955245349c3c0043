package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Report errors
	ErrUnsupportedFormat      = errors.New("unsupported format")
	ErrReportGenerationFailed = errors.New("report generation failed")
	ErrTooManyRecords         = errors.New("too many records")

	// Request errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Report generation stages
const (
	StageWriteHeader = "write header"
	StageWriteData   = "write data"
	StageFinalize    = "finalize"
	StageGenerate    = "generate"
)

// UnsupportedFormatError is returned when no encoder is registered for
// the requested extension. Extension keeps the caller's original text.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return "Unsupported file extension: " + e.Extension
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// GenerationError reports a failed encoding step. The whole report is
// discarded when it occurs.
type GenerationError struct {
	Stage string
	Err   error
}

func NewGenerationError(stage string, err error) *GenerationError {
	return &GenerationError{Stage: stage, Err: err}
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("report generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrReportGenerationFailed
}
