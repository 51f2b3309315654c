package extract

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	tabRun       = regexp.MustCompile(`<w:tab\s*/>`)
	lineBreak    = regexp.MustCompile(`<w:br\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX returns the body text of a word-processor document.
func extractDOCX(data []byte) (string, error) {
	return safely(func() (string, error) {
		doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("parse docx: %w", err)
		}
		defer doc.Close()

		return bodyText(doc.Editable().GetContent()), nil
	})
}

// bodyText flattens document.xml into plain text, one line per paragraph.
func bodyText(xml string) string {
	xml = paragraphEnd.ReplaceAllString(xml, "\n")
	xml = tabRun.ReplaceAllString(xml, "\t")
	xml = lineBreak.ReplaceAllString(xml, "\n")
	text := html.UnescapeString(xmlTag.ReplaceAllString(xml, ""))

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
