package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uriel-s/image-comparison-tool/internal/inspect"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	passRateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

func gradeStyle(g inspect.Grade) lipgloss.Style {
	switch g {
	case inspect.GradeExcellent, inspect.GradeGood:
		return passStyle
	case inspect.GradeAcceptable:
		return warnStyle
	default:
		return failStyle
	}
}

// Terminal renders the short styled digest printed after a run.
func Terminal(s *inspect.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Test points analyzed:"), s.Total)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Defects found:"), s.Failed)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Pass rate:"), passRateStyle.Render(fmt.Sprintf("%.1f%%", s.PassRate)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Overall result:"), gradeStyle(s.Grade).Render(s.Grade.String()))
	return b.String()
}
