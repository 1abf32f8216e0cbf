package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the content type list, the confirmation dialog and help.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.loc.Sprintf("admin.content_types.title")))
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(mutedStyle.Render("…"))
		b.WriteString("\n")
	case len(m.items) == 0:
		b.WriteString(mutedStyle.Render(m.loc.Sprintf("admin.console.empty")))
		b.WriteString("\n")
	default:
		for i, item := range m.items {
			mark := "[ ]"
			if item.Localized {
				mark = "[x]"
			}
			line := mark + " " + item.DisplayName + " " + mutedStyle.Render(item.UID)
			if i == m.cursor {
				line = selectedStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.toggle != nil {
		view := m.toggle.View(m.loc)
		if view.DialogOpen {
			dialog := lipgloss.JoinVertical(lipgloss.Left,
				dialogTitleStyle.Render(view.DialogTitle),
				"",
				view.DialogContent,
				warningStyle.Render(view.DialogBody),
				"",
				mutedStyle.Render("[n] "+view.CancelLabel+"   [y] "+view.ConfirmLabel),
			)
			b.WriteString("\n")
			b.WriteString(dialogStyle.Render(dialog))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.loc.Sprintf("admin.console.help")))
	return b.String()
}
