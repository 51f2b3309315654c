// Package report renders the downloadable PDF analysis report.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/amishk599/skillscan/internal/chart"
	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/role"
)

// Options controls optional report content.
type Options struct {
	Charts bool // append a page with the skills pie and keyword bars
}

// FileName returns the report file name for the role.
func FileName(r role.Role) string {
	return r.ReportFile
}

// Write renders the report for s as seen by role r. The first page always
// holds, in order: title, score, found skills, missing skills, recommended jobs.
func Write(w io.Writer, s model.Screening, r role.Role, opts Options) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.ReportTitle, true)
	pdf.SetCreator("skillscan", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, tr(r.ReportTitle), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	line := func(text string) {
		pdf.MultiCell(0, 10, tr(text), "", "L", false)
		pdf.Ln(5)
	}
	line(fmt.Sprintf("Resume Score: %d%%", s.Result.Score))
	line(fmt.Sprintf("%s: %s", r.ReportFound, strings.Join(s.Result.Found, ", ")))
	line(fmt.Sprintf("%s: %s", r.ReportMissing, strings.Join(s.Result.Missing, ", ")))
	line(fmt.Sprintf("Recommended Jobs: %s", strings.Join(s.JobTitles(), ", ")))

	if opts.Charts {
		if err := addCharts(pdf, s); err != nil {
			return err
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Save writes the report into dir under the role's file name and returns the
// path written.
func Save(dir string, s model.Screening, r role.Role, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, FileName(r))
	var buf bytes.Buffer
	if err := Write(&buf, s, r, opts); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

func addCharts(pdf *fpdf.Fpdf, s model.Screening) error {
	images := []struct {
		name   string
		render func(io.Writer) error
		width  float64
	}{
		{"skills_pie", func(w io.Writer) error { return chart.SkillsPie(w, s.Result) }, 100},
		{"keyword_bars", func(w io.Writer) error { return chart.KeywordBars(w, s.Keywords) }, 180},
	}

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	added := false
	for _, img := range images {
		var buf bytes.Buffer
		if err := img.render(&buf); err != nil {
			if errors.Is(err, chart.ErrNoData) {
				continue
			}
			return err
		}
		if !added {
			pdf.AddPage()
			added = true
		}
		pdf.RegisterImageOptionsReader(img.name, opts, &buf)
		pdf.ImageOptions(img.name, -1, -1, img.width, 0, true, opts, 0, "")
		pdf.Ln(5)
	}
	if pdf.Err() {
		return fmt.Errorf("embed charts: %w", pdf.Error())
	}
	return nil
}
