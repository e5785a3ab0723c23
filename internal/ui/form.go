package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasktable/internal/form"
	"tasktable/internal/task"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDeadline
	fieldPriority
	fieldCount
)

// formView edits a form.State through text inputs and a priority radio.
type formView struct {
	state  *form.State
	inputs []textinput.Model
	focus  int
}

func newFormView(state *form.State) formView {
	placeholders := []string{"Title", "Description", "YYYY-MM-DD"}
	values := []string{state.Title, state.Description, state.Deadline}

	inputs := make([]textinput.Model, len(placeholders))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		ti.SetValue(values[i])
		inputs[i] = ti
	}
	inputs[fieldDeadline].CharLimit = len("2006-01-02")

	f := formView{state: state, inputs: inputs}
	f.setFocus(fieldTitle)
	return f
}

func (f *formView) setFocus(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

// sync copies the input text into the form state.
func (f *formView) sync() {
	f.state.Title = f.inputs[fieldTitle].Value()
	f.state.Description = f.inputs[fieldDescription].Value()
	f.state.Deadline = f.inputs[fieldDeadline].Value()
}

func (f *formView) cyclePriority(step int) {
	cur := 0
	for i, p := range task.Priorities {
		if p == f.state.Priority.OrDefault() {
			cur = i
		}
	}
	n := len(task.Priorities)
	f.state.Priority = task.Priorities[(cur+step+n)%n]
}

// update handles keys that edit the form. Submission and cancel are
// handled by the caller.
func (f *formView) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	}

	if f.focus == fieldPriority {
		switch msg.String() {
		case "left", "h":
			f.cyclePriority(-1)
		case "right", "l", " ":
			f.cyclePriority(1)
		}
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.sync()
	return cmd
}

func (f formView) view() string {
	var sb strings.Builder
	sb.WriteString(StyleLabel.Render(f.state.Mode.String()) + "\n\n")

	labels := []string{"Title", "Description", "Deadline"}
	keys := []string{form.FieldTitle, form.FieldDescription, form.FieldDeadline}
	for i, label := range labels {
		sb.WriteString(StyleLabel.Render(label+" *") + "\n")
		sb.WriteString(f.inputs[i].View() + "\n")
		if msg, ok := f.state.Errors[keys[i]]; ok {
			sb.WriteString(StyleError.Render(msg) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(StyleLabel.Render("Priority") + "\n")
	var radios []string
	for _, p := range task.Priorities {
		mark, style := "( )", StyleRadio
		if p == f.state.Priority.OrDefault() {
			mark, style = "(•)", StyleRadioActive
		}
		radios = append(radios, style.Render(mark+" "+string(p)))
	}
	line := strings.Join(radios, "  ")
	if f.focus == fieldPriority {
		line = "> " + line
	}
	sb.WriteString(line + "\n\n")

	action := "add"
	if f.state.Mode == form.ModeUpdate {
		action = "update"
	}
	sb.WriteString(StyleSubtle.Render("tab next • ←/→ priority • enter " + action + " • esc cancel"))
	return StyleModal.Render(sb.String())
}
