// Package tui is the interactive terminal front end. It keeps a client.State,
// runs client effects as commands, and folds their events back in with
// client.Reduce.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/client"
	"todo-tracker/internal/domain"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// Form fields, in tab order.
const (
	fieldName = iota
	fieldDescription
	fieldStatus
	fieldCount
)

// eventMsg carries the outcome of an effect back to Update.
type eventMsg struct {
	event client.Event
}

// Options configures the model.
type Options struct {
	// Timeout bounds each server call. Zero means no limit.
	Timeout time.Duration
}

// Model is the bubbletea model for the task list.
type Model struct {
	effects *client.Effects
	timeout time.Duration

	state  client.State
	mode   mode
	cursor int
	width  int

	// busy is set while an effect is in flight; other actions are ignored.
	busy bool

	// Form state, shared by add and edit.
	focus       int
	name        textinput.Model
	description textinput.Model
	status      domain.Status
	// hadDescription records whether the draft that seeded the form had a
	// description, so an empty field is sent as empty text rather than absent.
	hadDescription bool

	// pendingDelete is the id awaiting confirmation.
	pendingDelete int64
}

// New creates a model that loads the task list on start.
func New(effects *client.Effects, opts Options) Model {
	return Model{
		effects: effects,
		timeout: opts.Timeout,
		busy:    true,
	}
}

// State returns the client state held by the model.
func (m Model) State() client.State {
	return m.state.Clone()
}

// Init starts the initial refresh.
func (m Model) Init() tea.Cmd {
	return m.run(m.effects.Refresh)
}

// run wraps an effect as a command.
func (m Model) run(effect func(ctx context.Context) client.Event) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return eventMsg{event: effect(ctx)}
	}
}

// Update handles key presses and effect results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case eventMsg:
		return m.applyEvent(msg.event), nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) applyEvent(ev client.Event) Model {
	m.busy = false
	m.state = client.Reduce(m.state, ev)

	switch ev.(type) {
	case client.Created:
		m.mode = modeList
		m.cursor = len(m.state.Tasks) - 1
	case client.Saved:
		if m.state.Editing == nil {
			m.mode = modeList
		}
	case client.Deleted:
		m.mode = modeList
	case client.Failed:
		// A failed delete returns to the list; forms stay open for retry.
		if m.mode == modeConfirmDelete {
			m.mode = modeList
		}
	}
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Tasks) {
		m.cursor = len(m.state.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Tasks) {
		return domain.Task{}, false
	}
	return m.state.Tasks[m.cursor], true
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Tasks)-1 {
			m.cursor++
		}
	case "r":
		m.busy = true
		return m, m.run(m.effects.Refresh)
	case "a":
		m.mode = modeAdd
		m.resetForm(domain.Draft{Status: domain.DefaultStatus})
	case "e", "enter":
		task, ok := m.selected()
		if !ok {
			break
		}
		m.state = client.Reduce(m.state, client.EditBegun{Task: task})
		m.mode = modeEdit
		m.resetForm(m.state.Editing.Draft)
	case "d", "x":
		task, ok := m.selected()
		if !ok {
			break
		}
		m.pendingDelete = task.ID
		m.mode = modeConfirmDelete
	}
	return m, nil
}

func (m *Model) resetForm(draft domain.Draft) {
	m.name = newInput(draft.Name, "What needs doing?")
	m.description = newInput(draft.DescriptionOr(""), "optional")
	m.hadDescription = draft.Description != nil
	m.status = draft.Status
	m.setFocus(fieldName)
}

func (m *Model) setFocus(field int) {
	m.focus = field
	m.name.Blur()
	m.description.Blur()
	switch field {
	case fieldName:
		m.name.Focus()
	case fieldDescription:
		m.description.Focus()
	}
}

// draft builds a Draft from the form. An empty description is absent unless
// the task being edited already had one.
func (m Model) draft() domain.Draft {
	d := domain.Draft{Name: m.name.Value(), Status: m.status}
	if desc := m.description.Value(); desc != "" || m.hadDescription {
		d.Description = &desc
	}
	return d
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeEdit {
			m.state = client.Reduce(m.state, client.EditCancelled{})
		}
		m.mode = modeList
		return m, nil
	case tea.KeyTab:
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case tea.KeyShiftTab:
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	case tea.KeyEnter:
		return m.submitForm()
	}

	changed := false
	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		changed, cmd = editInput(&m.name, msg)
	case fieldDescription:
		changed, cmd = editInput(&m.description, msg)
	case fieldStatus:
		switch msg.String() {
		case "left", "h":
			m.status = cycleStatus(m.status, -1)
			changed = true
		case "right", "l", " ":
			m.status = cycleStatus(m.status, 1)
			changed = true
		}
	}

	if changed && m.mode == modeEdit {
		m.state = client.Reduce(m.state, client.DraftChanged{Draft: m.draft()})
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.busy = true
	if m.mode == modeAdd {
		draft := m.draft()
		return m, m.run(func(ctx context.Context) client.Event {
			return m.effects.Create(ctx, draft)
		})
	}

	if m.state.Editing == nil {
		m.busy = false
		m.mode = modeList
		return m, nil
	}
	session := client.EditSession{ID: m.state.Editing.ID, Draft: m.draft()}
	return m, m.run(func(ctx context.Context) client.Event {
		return m.effects.Save(ctx, session)
	})
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.pendingDelete
	switch msg.String() {
	case "y", "Y":
		m.busy = true
		return m, m.run(func(ctx context.Context) client.Event {
			return m.effects.Delete(ctx, id)
		})
	case "n", "N", "esc", "q":
		m.state = client.Reduce(m.state, client.DeleteDeclined{ID: id})
		m.mode = modeList
	}
	return m, nil
}

func cycleStatus(current domain.Status, step int) domain.Status {
	statuses := domain.Statuses()
	for i, s := range statuses {
		if s == current {
			return statuses[(i+step+len(statuses))%len(statuses)]
		}
	}
	return domain.DefaultStatus
}

// Run starts the interactive program and blocks until it exits.
func Run(effects *client.Effects, opts Options) error {
	p := tea.NewProgram(New(effects, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
