package model

import (
	"path/filepath"
	"strings"
)

// Format is the declared format of an uploaded document.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatText    Format = "text"
	FormatUnknown Format = ""
)

// Document is an uploaded file held in memory.
type Document struct {
	Name   string
	Format Format
	Data   []byte
}

// FormatFromName derives the document format from its file extension.
func FormatFromName(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".txt", ".text":
		return FormatText
	default:
		return FormatUnknown
	}
}
