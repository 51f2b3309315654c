package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/skillscan/internal/chart"
	"github.com/amishk599/skillscan/internal/matcher"
	"github.com/amishk599/skillscan/internal/model"
	"github.com/amishk599/skillscan/internal/role"
)

// Widest keyword bar, in cells.
const maxBarWidth = 30

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("129"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Indexed by chart weight; 0 is unused.
	cloudStyles = [chart.MaxWeight + 1]lipgloss.Style{
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("24")).Bold(true),
	}
)

// renderScreening lays out every section of the dashboard for the role.
func renderScreening(s model.Screening, r role.Role, width int) string {
	var b strings.Builder
	section := func(title string) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteByte('\n')
	}

	b.WriteString(scoreStyle.Render(fmt.Sprintf("%s: %d%%", r.ScoreLabel, s.Result.Score)))
	b.WriteString(mutedStyle.Render("  (" + s.Document + ")"))
	b.WriteByte('\n')

	section(r.FoundLabel)
	b.WriteString(skillList(s.Result.Found, foundStyle))
	section(r.MissingLabel)
	b.WriteString(skillList(s.Result.Missing, missingStyle))

	if r.SuggestQuestions {
		section("Suggested Interview Questions")
		questions := matcher.InterviewQuestions(s.Result.Found)
		if len(questions) == 0 {
			b.WriteString(mutedStyle.Render("  (no strengths to probe)") + "\n")
		}
		for _, q := range questions {
			b.WriteString("  • " + q + "\n")
		}
	}

	section("Skills Overview")
	b.WriteString(proportionBar(s.Result, max(width-4, 10)) + "\n")

	section("Top Keywords")
	b.WriteString(keywordBars(s.Keywords))

	section("Keyword Cloud")
	b.WriteString(renderCloud(chart.Cloud(s.Keywords), max(width-4, 10)))

	section(r.JobsLabel)
	if len(s.Jobs) == 0 {
		b.WriteString(mutedStyle.Render("  (no matching jobs)") + "\n")
	}
	for _, j := range s.Jobs {
		b.WriteString(fmt.Sprintf("  %s — %d skills matched\n", j.Title, j.MatchCount))
	}

	return b.String()
}

func skillList(skills []string, st lipgloss.Style) string {
	if len(skills) == 0 {
		return mutedStyle.Render("  (none)") + "\n"
	}
	var b strings.Builder
	for _, s := range skills {
		b.WriteString("  " + st.Render("• "+s) + "\n")
	}
	return b.String()
}

// proportionBar is a one-line stand-in for the matched/missing pie chart.
func proportionBar(res model.AnalysisResult, width int) string {
	total := len(res.Found) + len(res.Missing)
	if total == 0 {
		return mutedStyle.Render("  (empty vocabulary)")
	}
	filled := len(res.Found) * width / total
	bar := foundStyle.Render(strings.Repeat("█", filled)) +
		missingStyle.Render(strings.Repeat("█", width-filled))
	legend := fmt.Sprintf("  matched %d (%.1f%%)  missing %d (%.1f%%)",
		len(res.Found), 100*float64(len(res.Found))/float64(total),
		len(res.Missing), 100*float64(len(res.Missing))/float64(total))
	return "  " + bar + "\n" + mutedStyle.Render(legend)
}

func keywordBars(keywords []model.KeywordCount) string {
	if len(keywords) == 0 {
		return mutedStyle.Render("  (no words)") + "\n"
	}
	top, wordWidth := 0, 0
	for _, k := range keywords {
		top = max(top, k.Count)
		wordWidth = max(wordWidth, lipgloss.Width(k.Word))
	}

	var b strings.Builder
	for _, k := range keywords {
		n := max(k.Count*maxBarWidth/top, 1)
		pad := strings.Repeat(" ", wordWidth-lipgloss.Width(k.Word))
		b.WriteString(fmt.Sprintf("  %s%s %s %d\n", k.Word, pad, barStyle.Render(strings.Repeat("▇", n)), k.Count))
	}
	return b.String()
}

// renderCloud flows weighted words into lines no wider than width.
func renderCloud(words []chart.CloudWord, width int) string {
	if len(words) == 0 {
		return mutedStyle.Render("  (no words)") + "\n"
	}
	var (
		b       strings.Builder
		lineLen int
	)
	b.WriteString("  ")
	for i, w := range words {
		text := w.Word
		if w.Weight == chart.MaxWeight {
			text = strings.ToUpper(text)
		}
		cell := lipgloss.Width(text) + 1
		if i > 0 && lineLen+cell > width {
			b.WriteString("\n  ")
			lineLen = 0
		}
		b.WriteString(cloudStyles[w.Weight].Render(text) + " ")
		lineLen += cell
	}
	b.WriteByte('\n')
	return b.String()
}
