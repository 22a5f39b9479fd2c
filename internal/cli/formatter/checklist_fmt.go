package formatter

import (
	"fmt"
	"strings"

	"github.com/courtops/docket/internal/domain"
	"github.com/courtops/docket/internal/service"
)

// FormatPhase renders one phase's checklist as an indented item list.
func FormatPhase(p domain.Phase, items []*domain.ChecklistItem) string {
	var b strings.Builder
	b.WriteString(Header(PhaseLabel(p)))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(Dim("  no items") + "\n")
		return b.String()
	}

	for _, it := range items {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", StatusGlyph(it.Status), it.Title, Dim("("+it.ID+")")))

		var tags []string
		for _, lang := range it.RequiredLanguages {
			tags = append(tags, LangBadge(lang, it.Languages[lang]))
		}
		if it.Blocked {
			tags = append(tags, StyleRed.Render("BLOCKED"))
		}
		if it.DueDate != nil {
			tags = append(tags, Dim("due "+it.DueDate.Format("2006-01-02")))
		}
		if n := len(it.Evidence); n > 0 {
			tags = append(tags, Dim(fmt.Sprintf("%d evidence", n)))
		}
		if len(tags) > 0 {
			b.WriteString("    " + strings.Join(tags, "  ") + "\n")
		}
	}

	return b.String()
}

// FormatItem renders a single item in full: description, derived status,
// languages, actions and the evidence trail.
func FormatItem(it *domain.ChecklistItem) string {
	var b strings.Builder
	b.WriteString(Header(it.Title))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %s   %s\n", StatusGlyph(it.Status), Bold(string(it.Status)), DerivedIndicator(it.Derived())))
	if it.Description != "" {
		b.WriteString("  " + Dim(it.Description) + "\n")
	}
	if it.DueDate != nil {
		b.WriteString("  " + Dim("Due "+it.DueDate.Format("2006-01-02")) + "\n")
	}

	if len(it.RequiredLanguages) > 0 {
		var badges []string
		for _, lang := range it.RequiredLanguages {
			badges = append(badges, LangBadge(lang, it.Languages[lang]))
		}
		b.WriteString("\n  Languages: " + strings.Join(badges, "  ") + "\n")
	}

	if len(it.Actions) > 0 {
		b.WriteString("\n" + Bold("  Actions") + "\n")
		for _, a := range it.Actions {
			marker := " "
			if a.Primary {
				marker = StylePurple.Render("*")
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", marker, a.Label, Dim("("+a.ID+")")))
		}
	}

	if len(it.Evidence) > 0 {
		b.WriteString("\n" + Bold("  Evidence") + "\n")
		for _, ev := range it.Evidence {
			line := fmt.Sprintf("  - [%s] %s", ev.Type, ev.Title)
			if ev.Language != "" {
				line += " " + Dim("("+strings.ToUpper(string(ev.Language))+")")
			}
			if ev.Meta != "" {
				line += " " + Dim(ev.Meta)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// FormatActivity renders the case feed, most recent first. A limit of zero
// shows everything.
func FormatActivity(entries []domain.ActivityItem, limit int) string {
	var b strings.Builder
	b.WriteString(Header("Recent Activity"))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(Dim("  no activity yet") + "\n")
		return b.String()
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s", Dim(e.Timestamp.Local().Format("2006-01-02 15:04")), e.Title)
		if e.Subtitle != "" {
			line += " " + Dim("· "+e.Subtitle)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// FormatProgress renders one phase progress line with a bar, the completed
// count and the awaiting-translation count.
func FormatProgress(p domain.Phase, prog service.Progress, awaiting int) string {
	pct := 0.0
	if prog.Total > 0 {
		pct = float64(prog.Completed) / float64(prog.Total)
	}
	line := fmt.Sprintf("  %-20s %s %s", PhaseLabel(p), RenderProgress(pct, 16),
		Dim(fmt.Sprintf("%d/%d", prog.Completed, prog.Total)))
	if awaiting > 0 {
		line += "  " + StyleYellow.Render(fmt.Sprintf("%d awaiting translation", awaiting))
	}
	return line + "\n"
}
