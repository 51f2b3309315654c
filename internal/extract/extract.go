// Package extract turns uploaded resumes into plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/amishk599/skillscan/internal/model"
)

// Ensure Extractor implements model.TextExtractor.
var _ model.TextExtractor = (*Extractor)(nil)

// Extractor dispatches on the declared document format.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor returns an extractor for PDF, DOCX and plain-text documents.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns the document's plain text. On failure it returns "" and a
// *model.ExtractionError; partial text is never returned.
func (e *Extractor) Extract(ctx context.Context, doc model.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch doc.Format {
	case model.FormatPDF:
		text, err = e.extractPDF(doc.Data)
	case model.FormatDOCX:
		text, err = extractDOCX(doc.Data)
	case model.FormatText:
		if !utf8.Valid(doc.Data) {
			err = errors.New("text is not valid UTF-8")
		} else {
			text = string(doc.Data)
		}
	default:
		err = model.ErrUnsupportedFormat
	}
	if err != nil {
		return "", &model.ExtractionError{Name: doc.Name, Format: doc.Format, Err: err}
	}

	e.logger.Debug("extracted document",
		"document", doc.Name,
		"format", string(doc.Format),
		"bytes", len(doc.Data),
		"chars", utf8.RuneCountInString(text),
	)
	return text, nil
}

// safely runs fn and converts a panic from a parser into an error.
func safely(fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return fn()
}
