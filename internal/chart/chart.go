// Package chart renders the skills proportion chart and keyword-frequency bar
// chart as PNG, and lays out word-cloud weights for terminal display.
package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/amishk599/skillscan/internal/model"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to chart")

var (
	matchedColor = drawing.ColorFromHex("2e7d32")
	missingColor = drawing.ColorFromHex("c62828")
	barColor     = drawing.ColorFromHex("6a1b9a")
)

// SkillsPie writes a two-slice PNG pie of matched versus missing skills.
// Empty slices are left out.
func SkillsPie(w io.Writer, result model.AnalysisResult) error {
	var values []gochart.Value
	if n := len(result.Found); n > 0 {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("Matched Skills (%d)", n),
			Value: float64(n),
			Style: gochart.Style{FillColor: matchedColor, StrokeColor: drawing.ColorWhite},
		})
	}
	if n := len(result.Missing); n > 0 {
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("Missing Skills (%d)", n),
			Value: float64(n),
			Style: gochart.Style{FillColor: missingColor, StrokeColor: drawing.ColorWhite},
		})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	pie := gochart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}
	if err := pie.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render skills pie: %w", err)
	}
	return nil
}

// KeywordBars writes a PNG bar chart of keyword frequencies in the given order.
func KeywordBars(w io.Writer, keywords []model.KeywordCount) error {
	if len(keywords) == 0 {
		return ErrNoData
	}

	bars := make([]gochart.Value, len(keywords))
	top := 0
	for i, k := range keywords {
		bars[i] = gochart.Value{
			Label: k.Word,
			Value: float64(k.Count),
			Style: gochart.Style{FillColor: barColor, StrokeColor: barColor},
		}
		top = max(top, k.Count)
	}

	bc := gochart.BarChart{
		Title:      "Top Keywords",
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Width:      max(900, len(bars)*60+200),
		Height:     400,
		BarWidth:   40,
		BarSpacing: 20,
		YAxis: gochart.YAxis{
			Name:  "Frequency",
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}
	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render keyword bars: %w", err)
	}
	return nil
}
