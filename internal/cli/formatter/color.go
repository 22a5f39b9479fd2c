package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/courtops/docket/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusGlyph returns the checkbox glyph for a manually cycled status.
func StatusGlyph(s domain.ItemStatus) string {
	switch s {
	case domain.StatusComplete:
		return StyleGreen.Render("●")
	case domain.StatusPartial:
		return StyleYellow.Render("◐")
	default:
		return StyleDim.Render("○")
	}
}

// DerivedIndicator returns a colored indicator for an evidence-derived status,
// such as "● BLOCKED".
func DerivedIndicator(d domain.DerivedStatus) string {
	switch d {
	case domain.DerivedCompleted:
		return StyleGreen.Render("● COMPLETED")
	case domain.DerivedInProgress:
		return StyleYellow.Render("● IN PROGRESS")
	case domain.DerivedBlocked:
		return StyleRed.Render("● BLOCKED")
	default:
		return StyleDim.Render("● NOT STARTED")
	}
}

// LangBadge renders one language sub-status as "EN:awaiting" with a status
// color.
func LangBadge(lang domain.Language, s domain.LanguageStatus) string {
	label := fmt.Sprintf("%s:%s", strings.ToUpper(string(lang)), s)
	switch s {
	case domain.LangComplete:
		return StyleGreen.Render(label)
	case domain.LangAwaiting:
		return StyleYellow.Render(label)
	case domain.LangNotApplicable:
		return StyleDim.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// PhaseLabel returns the display name of a phase.
func PhaseLabel(p domain.Phase) string {
	switch p {
	case domain.PhaseInitiation:
		return "Initiation"
	case domain.PhaseProcedural:
		return "Procedural"
	case domain.PhaseWritten:
		return "Written Proceedings"
	case domain.PhaseOral:
		return "Oral Proceedings"
	case domain.PhaseJudgment:
		return "Judgment"
	case domain.PhaseClosure:
		return "Closure"
	default:
		return string(p)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
