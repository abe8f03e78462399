package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Lip Gloss styles for the interactive view. SetTheme re-derives them.
var (
	TitleStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	PendingStyle  lipgloss.Style
	AccentStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	DoneStyle     lipgloss.Style
	HelpStyle     lipgloss.Style
	FrameStyle    lipgloss.Style
)

type palette struct {
	success, pending, accent, err, border lipgloss.TerminalColor
}

var palettes = map[string]palette{
	"classic": {lipgloss.Color("42"), lipgloss.Color("214"), lipgloss.Color("12"), lipgloss.Color("9"), lipgloss.Color("8")},
	"neon":    {lipgloss.Color("48"), lipgloss.Color("226"), lipgloss.Color("51"), lipgloss.Color("197"), lipgloss.Color("201")},
	"mono":    {lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}},
}

func init() { applyStyles(current) }

func applyStyles(t Theme) {
	p, ok := palettes[t.Name]
	if !ok {
		p = palettes["classic"]
	}
	TitleStyle = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.success)
	PendingStyle = lipgloss.NewStyle().Foreground(p.pending)
	AccentStyle = lipgloss.NewStyle().Foreground(p.accent)
	MutedStyle = lipgloss.NewStyle().Faint(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.err).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle = lipgloss.NewStyle().Faint(true)

	FrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)
}

// StrikeStyled is Strike for the Lip Gloss view: terminals get the
// strikethrough attribute, plain output gets combining overlays.
func StrikeStyled(s string) string {
	if ColorEnabled() {
		return DoneStyle.Render(s)
	}
	return Strike(s)
}

// Checkbox returns the themed glyph for a checkbox state.
func Checkbox(checked bool) string {
	if checked {
		return current.BoxChecked
	}
	return current.BoxUnchecked
}
