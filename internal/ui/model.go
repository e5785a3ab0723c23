// Package ui is the interactive task table: a list of tasks with
// per-row actions and a modal add/update form.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktable/internal/app"
	"tasktable/internal/form"
	"tasktable/internal/output"
	"tasktable/internal/task"
)

const toastTTL = 3 * time.Second

// toastSink receives store notifications for display.
type toastSink struct {
	msg string
	seq int
}

func (t *toastSink) Notify(e task.Event, id int) {
	t.msg = e.Message()
	t.seq++
}

type toastExpiredMsg struct{ seq int }

// Model is the bubbletea model of the task table.
type Model struct {
	ctx     context.Context
	session *app.Session
	toast   *toastSink

	table  table.Model
	ids    []int
	form   *formView
	status string
	seen   int // last toast seq a timer was started for

	width, height int
}

// NewModel creates the table model over a fresh session. Options are
// applied before the model installs its own toast sink.
func NewModel(ctx context.Context, opts ...app.Option) Model {
	sink := &toastSink{}
	s := app.New(append(opts, app.WithToast(sink))...)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Title", Width: 20},
			{Title: "Description", Width: 28},
			{Title: "Deadline", Width: 10},
			{Title: "Priority", Width: 8},
			{Title: "Is Complete?", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorSecondary).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(ColorText).
		Background(ColorPrimary)
	t.SetStyles(styles)

	m := Model{ctx: ctx, session: s, toast: sink, table: t}
	m.refresh()
	return m
}

// Session returns the session driven by the model.
func (m Model) Session() *app.Session { return m.session }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast.msg = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		if m.form != nil {
			cmd = m.updateForm(msg)
		} else {
			var quit bool
			cmd, quit = m.updateTable(msg)
			if quit {
				return m, tea.Quit
			}
		}
		m.refresh()
		return m, tea.Batch(cmd, m.toastTimer())
	}
	return m, nil
}

func (m *Model) updateTable(msg tea.KeyMsg) (tea.Cmd, bool) {
	m.status = ""
	switch msg.String() {
	case "q":
		return nil, true
	case "a":
		m.session.OpenAdd()
		fv := newFormView(m.session.AddForm())
		m.form = &fv
		return nil, false
	case "e":
		if id, ok := m.selected(); ok {
			if err := m.session.BeginEdit(id); err != nil {
				m.status = err.Error()
				return nil, false
			}
			fv := newFormView(m.session.EditForm())
			m.form = &fv
		}
		return nil, false
	case " ", "x":
		if id, ok := m.selected(); ok {
			if _, err := m.session.Toggle(m.ctx, id); err != nil {
				m.status = err.Error()
			}
		}
		return nil, false
	case "d":
		if id, ok := m.selected(); ok {
			m.session.Delete(m.ctx, id)
		}
		return nil, false
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd, false
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	state := m.form.state
	switch msg.String() {
	case "esc":
		if state.Mode == form.ModeUpdate {
			m.session.CancelEdit()
		} else {
			m.session.CancelAdd()
		}
		m.form = nil
		return nil
	case "enter":
		m.form.sync()
		var err error
		if state.Mode == form.ModeUpdate {
			_, err = m.session.SubmitEdit()
		} else {
			_, err = m.session.SubmitAdd()
		}
		if err == nil || !isValidation(err) {
			if err != nil {
				m.status = err.Error()
			}
			m.form = nil
		}
		return nil
	}
	return m.form.update(msg)
}

func isValidation(err error) bool {
	var errs form.Errors
	return errors.As(err, &errs)
}

func (m *Model) toastTimer() tea.Cmd {
	if m.toast.msg == "" || m.toast.seq == m.seen {
		return nil
	}
	m.seen = m.toast.seq
	seq := m.toast.seq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m Model) selected() (int, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.ids) {
		return 0, false
	}
	return m.ids[c], true
}

// refresh rebuilds the table rows from the store.
func (m *Model) refresh() {
	tasks := m.session.Tasks(m.ctx)
	rows := make([]table.Row, len(tasks))
	m.ids = make([]int, len(tasks))
	for i, t := range tasks {
		m.ids[i] = t.ID
		deadline := output.NoDeadline
		if t.HasDeadline() {
			deadline = t.Deadline.String()
		}
		done := "[ ]"
		if t.IsComplete {
			done = "[x]"
		}
		rows[i] = table.Row{
			fmt.Sprint(t.ID),
			t.Title,
			t.Description,
			deadline,
			string(t.Priority),
			done,
		}
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(StyleHeader.Render("TASKS") + "\n\n")

	if m.form != nil {
		body := m.form.view()
		if m.width > 0 && m.height > 0 {
			body = lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, body)
		}
		sb.WriteString(body + "\n")
	} else {
		if len(m.ids) == 0 {
			sb.WriteString(StyleSubtle.Render("No tasks yet. Press a to add one.") + "\n")
		} else {
			sb.WriteString(m.table.View() + "\n")
		}
		sb.WriteString("\n" + StyleSubtle.Render("a add • e update • space toggle • d delete • q quit") + "\n")
	}

	if m.status != "" {
		sb.WriteString(StyleError.Render(m.status) + "\n")
	}
	if m.toast.msg != "" {
		sb.WriteString(StyleToast.Render(m.toast.msg) + "\n")
	}
	return sb.String()
}

// Run starts the interactive table and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts ...app.Option) error {
	p := tea.NewProgram(NewModel(ctx, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
