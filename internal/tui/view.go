package tui

import (
	"fmt"
	"strings"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// View renders the list, the active form, and the status footer.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Todo "))
	b.WriteString("\n\n")

	b.WriteString(m.renderTasks())

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(m.renderForm("New task"))
	case modeEdit:
		b.WriteString("\n")
		b.WriteString(m.renderForm("Edit task"))
	case modeConfirmDelete:
		name := fmt.Sprintf("#%d", m.pendingDelete)
		if task, ok := m.state.Find(m.pendingDelete); ok {
			name = fmt.Sprintf("%q", task.Name)
		}
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Delete %s? (y/n)", name)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(busyStyle.Render("Working..."))
		b.WriteString("\n")
	}
	if m.state.LastError != nil {
		b.WriteString(errorStyle.Render("Error: " + errors.GetUserMessage(m.state.LastError)))
		b.WriteString("\n")
	}
	b.WriteString(renderSummary(services.SummarizeTasks(m.state.Tasks)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m Model) renderTasks() string {
	if len(m.state.Tasks) == 0 {
		return "  No tasks yet. Press a to add one.\n"
	}

	var b strings.Builder
	for i, task := range m.state.Tasks {
		pointer := "  "
		line := fmt.Sprintf("%-4d %s", task.ID, task.Name)
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
			line = selectedStyle.Render(line)
		}
		status := styleForStatus(task.Status).Render(fmt.Sprintf("[%s]", task.Status))

		b.WriteString(pointer)
		b.WriteString(status)
		b.WriteString(" ")
		b.WriteString(line)
		if m.state.IsEditing(task.ID) {
			b.WriteString(editingStyle.Render(" (editing)"))
		}
		if task.Description != nil && *task.Description != "" {
			b.WriteString(descStyle.Render(" - " + *task.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderForm(title string) string {
	rows := []struct {
		field int
		label string
		value string
	}{
		{fieldName, "Name", m.name.View()},
		{fieldDescription, "Description", m.description.View()},
		{fieldStatus, "Status", "< " + m.status.String() + " >"},
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render(title))
	for _, row := range rows {
		b.WriteString("\n")
		label := labelStyle.Render(row.label)
		value := row.value
		if row.field == m.focus {
			label = focusStyle.Render(row.label)
		}
		b.WriteString(label)
		b.WriteString(value)
	}

	style := formStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(b.String()) + "\n"
}

func renderSummary(summary *services.StatusSummary) string {
	parts := []string{fmt.Sprintf("%d tasks", summary.Total)}
	for _, c := range summary.ByStatus {
		parts = append(parts, styleForStatus(c.Status).Render(fmt.Sprintf("%s %d", c.Status, c.Count)))
	}
	return strings.Join(parts, " | ")
}

func (m Model) help() string {
	switch m.mode {
	case modeAdd, modeEdit:
		return "tab: next field | left/right: move or change status | ctrl+w: delete word | enter: save | esc: cancel"
	case modeConfirmDelete:
		return "y: delete | n: keep"
	default:
		return "j/k: move | a: add | e: edit | d: delete | r: refresh | q: quit"
	}
}
