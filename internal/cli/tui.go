package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/courtops/docket/internal/cli/formatter"
	"github.com/courtops/docket/internal/domain"
	"github.com/courtops/docket/internal/service"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive checklist browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Checklists.Open(context.Background(), app.CaseID)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newChecklistModel(sess), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

var (
	tabActiveStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	cursorStyle    = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
)

// checklistModel is the root bubbletea model: one phase visible at a time,
// a cursor over its items, and a toggleable activity pane.
type checklistModel struct {
	sess *service.ChecklistSession

	phaseIdx int
	cursor   int
	items    []*domain.ChecklistItem

	showActivity bool
	notice       string
	width        int
	height       int
	quitting     bool
}

func newChecklistModel(sess *service.ChecklistSession) checklistModel {
	m := checklistModel{sess: sess}
	m.reload()
	return m
}

func (m *checklistModel) phase() domain.Phase {
	return domain.Phases[m.phaseIdx]
}

func (m *checklistModel) reload() {
	m.items = m.sess.Phase(m.phase())
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *checklistModel) selected() (*domain.ChecklistItem, bool) {
	if len(m.items) == 0 {
		return nil, false
	}
	return m.items[m.cursor], true
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m checklistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	m.notice = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "a":
		m.showActivity = !m.showActivity
		return m, nil

	case "tab", "right", "l":
		m.phaseIdx = (m.phaseIdx + 1) % len(domain.Phases)
		m.cursor = 0
		m.reload()
		return m, nil

	case "shift+tab", "left", "h":
		m.phaseIdx = (m.phaseIdx + len(domain.Phases) - 1) % len(domain.Phases)
		m.cursor = 0
		m.reload()
		return m, nil

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ":
		if it, ok := m.selected(); ok {
			if st, err := m.sess.CycleStatus(ctx, it.ID); err == nil {
				m.notice = fmt.Sprintf("%s is now %s", it.Title, st)
			}
			m.reload()
		}
		return m, nil

	case "e", "f":
		lang := domain.LanguageEN
		if msg.String() == "f" {
			lang = domain.LanguageFR
		}
		if it, ok := m.selected(); ok {
			st, err := m.sess.CycleLanguage(ctx, it.ID, lang)
			if err != nil {
				m.notice = err.Error()
			} else {
				m.notice = fmt.Sprintf("%s %s version is now %s", it.Title, strings.ToUpper(string(lang)), st)
			}
			m.reload()
		}
		return m, nil

	case "b":
		if it, ok := m.selected(); ok {
			if err := m.sess.SetBlocked(ctx, it.ID, !it.Blocked); err == nil {
				m.reload()
			}
		}
		return m, nil

	case "enter":
		if it, ok := m.selected(); ok {
			action, ok := domain.PrimaryAction(it.Actions)
			if !ok {
				m.notice = "no actions on this item"
				return m, nil
			}
			res, err := m.sess.RunAction(ctx, it.ID, action.Request())
			if err != nil {
				m.notice = err.Error()
			} else {
				m.notice = res.Activity.Title
			}
			m.reload()
		}
		return m, nil
	}

	return m, nil
}

func (m checklistModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs() + "\n\n")

	if m.showActivity {
		b.WriteString(formatter.FormatActivity(m.sess.Activity(), 15))
	} else {
		b.WriteString(m.renderItems())
	}

	if m.notice != "" {
		b.WriteString("\n" + formatter.Dim(m.notice) + "\n")
	}
	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m checklistModel) renderTabs() string {
	var tabs []string
	for i, p := range domain.Phases {
		label := formatter.PhaseLabel(p)
		prog := m.sess.Progress(p)
		if prog.Total > 0 {
			label = fmt.Sprintf("%s %d/%d", label, prog.Completed, prog.Total)
		}
		if i == m.phaseIdx {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return " " + strings.Join(tabs, formatter.Dim(" │ "))
}

func (m checklistModel) renderItems() string {
	if len(m.items) == 0 {
		return formatter.Dim("  no items in this phase") + "\n"
	}

	var b strings.Builder
	for i, it := range m.items {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s", prefix, formatter.StatusGlyph(it.Status), it.Title)

		var tags []string
		for _, lang := range it.RequiredLanguages {
			tags = append(tags, formatter.LangBadge(lang, it.Languages[lang]))
		}
		if it.Blocked {
			tags = append(tags, formatter.StyleRed.Render("BLOCKED"))
		}
		if n := len(it.Evidence); n > 0 {
			tags = append(tags, formatter.Dim(fmt.Sprintf("%d evidence", n)))
		}
		if len(tags) > 0 {
			line += "  " + strings.Join(tags, " ")
		}
		b.WriteString(line + "\n")

		if i == m.cursor {
			b.WriteString("      " + formatter.DerivedIndicator(it.Derived()) + "\n")
		}
	}
	return b.String()
}

func (m checklistModel) renderHelp() string {
	keys := []string{
		"tab phase", "j/k move", "space status", "e/f language",
		"enter action", "b block", "a activity", "q quit",
	}
	return formatter.Dim(" " + strings.Join(keys, " · "))
}
