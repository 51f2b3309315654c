package model

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is wrapped by ExtractionError when the document format
// has no extractor.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractionError reports a document that could not be parsed at all.
type ExtractionError struct {
	Name   string
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	format := string(e.Format)
	if format == "" {
		format = "unknown"
	}
	if e.Err != nil {
		return fmt.Sprintf("extract %s (%s): %v", e.Name, format, e.Err)
	}
	return fmt.Sprintf("extract %s (%s)", e.Name, format)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
