package model

import (
	"errors"
	"testing"
)

func TestFormatFromName(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"resume.pdf", FormatPDF},
		{"Resume.PDF", FormatPDF},
		{"cv.docx", FormatDOCX},
		{"notes.txt", FormatText},
		{"cv.doc", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromName(tt.name); got != tt.want {
				t.Errorf("FormatFromName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestExtractionError_Unwrap(t *testing.T) {
	err := error(&ExtractionError{Name: "cv.odt", Err: ErrUnsupportedFormat})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("errors.Is(%v, ErrUnsupportedFormat) = false", err)
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) || ee.Name != "cv.odt" {
		t.Errorf("errors.As did not recover ExtractionError: %v", err)
	}
	if got, want := err.Error(), "extract cv.odt (unknown): unsupported document format"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestScreening_JobTitles(t *testing.T) {
	s := Screening{Jobs: []JobMatch{{Title: "Data Analyst", MatchCount: 3}, {Title: "Java Developer", MatchCount: 1}}}
	got := s.JobTitles()
	if len(got) != 2 || got[0] != "Data Analyst" || got[1] != "Java Developer" {
		t.Errorf("JobTitles() = %v", got)
	}
	if got := (Screening{}).JobTitles(); len(got) != 0 {
		t.Errorf("JobTitles() on empty = %v, want empty", got)
	}
}
