package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title  lipgloss.Style
	Faint  lipgloss.Style
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Answer lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Faint:  lipgloss.NewStyle().Faint(true),
		Pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Answer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
}

func (t theme) mark(passed bool) string {
	if passed {
		return t.Pass.Render("✓")
	}
	return t.Fail.Render("✗")
}
