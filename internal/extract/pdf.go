package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates the text of every page in page order. A page with
// no content, or one the parser chokes on, contributes nothing.
func (e *Extractor) extractPDF(data []byte) (string, error) {
	return safely(func() (string, error) {
		r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("read pdf: %w", err)
		}

		var b strings.Builder
		numPages := r.NumPage()
		for i := 1; i <= numPages; i++ {
			b.WriteString(e.pageText(r, i))
		}
		return b.String(), nil
	})
}

func (e *Extractor) pageText(r *pdf.Reader, n int) string {
	text, err := safely(func() (string, error) {
		page := r.Page(n)
		if page.V.IsNull() {
			return "", nil
		}
		return page.GetPlainText(nil)
	})
	if err != nil {
		e.logger.Debug("pdf page yielded no text", "page", n, "error", err)
		return ""
	}
	return text
}
