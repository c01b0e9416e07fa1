package tui

import (
	"fmt"
	"strings"

	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/forms"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type control int

const (
	controlName control = iota
	controlEmail
	controlAge
	controlCountry
	controlGender
	controlMusic
	controlSports
	controlCoding
	controlCount
)

var textControls = map[control]string{
	controlName:  models.FieldFullName,
	controlEmail: models.FieldEmail,
	controlAge:   models.FieldAge,
}

var interestControls = map[control]string{
	controlMusic:  models.InterestMusic,
	controlSports: models.InterestSports,
	controlCoding: models.InterestCoding,
}

type entryForm struct {
	draft  models.SubmissionDraft
	errors models.ValidationErrors
	inputs map[control]*textinput.Model
	focus  control
}

func newEntryForm() *entryForm {
	f := &entryForm{
		draft:  forms.NewDraft(),
		errors: models.ValidationErrors{},
		inputs: map[control]*textinput.Model{},
	}
	placeholders := map[control]string{
		controlName:  "Full Name",
		controlEmail: "Email Address",
		controlAge:   "Age",
	}
	for c, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.Prompt = ""
		ti.CharLimit = 128
		f.inputs[c] = &ti
	}
	return f
}

func (f *entryForm) focusCmd() tea.Cmd {
	if ti, ok := f.inputs[f.focus]; ok {
		return ti.Focus()
	}
	return nil
}

func (f *entryForm) moveFocus(delta int) tea.Cmd {
	if ti, ok := f.inputs[f.focus]; ok {
		ti.Blur()
	}
	f.focus = control((int(f.focus) + delta + int(controlCount)) % int(controlCount))
	return f.focusCmd()
}

// update applies one message to the focused control. Every change goes
// through forms.UpdateField, same as the HTTP form.
func (f *entryForm) update(msg tea.Msg) tea.Cmd {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "tab", "down":
			return f.moveFocus(1)
		case "shift+tab", "up":
			return f.moveFocus(-1)
		}
	}

	if field, ok := textControls[f.focus]; ok {
		ti := f.inputs[f.focus]
		updated, cmd := ti.Update(msg)
		*ti = updated
		f.set(field, ti.Value())
		return cmd
	}
	if !isKey {
		return nil
	}

	switch f.focus {
	case controlCountry:
		if step := arrowStep(key); step != 0 {
			f.set(models.FieldCountry, cycle(models.Countries, f.draft.Country, step, true))
		}
	case controlGender:
		if step := arrowStep(key); step != 0 {
			f.set(models.FieldGender, cycle(models.Genders, f.draft.Gender, step, false))
		}
	default:
		if interest, ok := interestControls[f.focus]; ok && (key.String() == " " || key.String() == "x") {
			checked, _ := f.draft.Interests.Get(interest)
			f.set(forms.InterestInputName(interest), !checked)
		}
	}
	return nil
}

func (f *entryForm) set(name string, value any) {
	draft, err := forms.UpdateField(f.draft, name, value)
	if err != nil {
		// names come from the fixed control tables above
		panic(err)
	}
	f.draft = draft
}

func arrowStep(key tea.KeyMsg) int {
	switch key.String() {
	case "right", "l", " ":
		return 1
	case "left", "h":
		return -1
	}
	return 0
}

// cycle moves through options from current. With allowEmpty the unselected
// state is part of the ring; otherwise it is only the starting point.
func cycle(options []models.Option, current string, step int, allowEmpty bool) string {
	values := make([]string, 0, len(options)+1)
	if allowEmpty {
		values = append(values, "")
	}
	for _, o := range options {
		values = append(values, o.Value)
	}

	idx := -1
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if step > 0 {
			return values[0]
		}
		return values[len(values)-1]
	}
	return values[(idx+step+len(values))%len(values)]
}

func (f *entryForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Form Submission"))
	b.WriteString("\n\n")

	for _, c := range []control{controlName, controlEmail, controlAge} {
		field := textControls[c]
		b.WriteString(f.row(c, f.inputs[c].Placeholder, f.inputs[c].View()))
		b.WriteString(f.errorLine(field))
	}

	b.WriteString(f.row(controlCountry, "Country", choice(models.Countries, f.draft.Country, "Select a country")))
	b.WriteString(f.errorLine(models.FieldCountry))
	b.WriteString(f.row(controlGender, "Gender", choice(models.Genders, f.draft.Gender, "Select your gender")))
	b.WriteString(f.errorLine(models.FieldGender))

	for _, c := range []control{controlMusic, controlSports, controlCoding} {
		interest := interestControls[c]
		checked, _ := f.draft.Interests.Get(interest)
		box := "[ ]"
		if checked {
			box = "[x]"
		}
		b.WriteString(f.row(c, "Interest", box+" "+interest))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/shift+tab move • ←/→ choose • space toggle • enter submit • esc quit"))
	return b.String()
}

func (f *entryForm) row(c control, label, value string) string {
	cursor := "  "
	style := labelStyle
	if f.focus == c {
		cursor = "> "
		style = focusedLabelStyle
	}
	return fmt.Sprintf("%s%s %s\n", cursor, style.Render(label+":"), value)
}

func (f *entryForm) errorLine(field string) string {
	msg, ok := f.errors[field]
	if !ok {
		return ""
	}
	return "    " + errorStyle.Render(msg) + "\n"
}

func choice(options []models.Option, value, placeholder string) string {
	for _, o := range options {
		if o.Value == value {
			return "‹ " + o.Label + " ›"
		}
	}
	return lipgloss.NewStyle().Faint(true).Render("‹ " + placeholder + " ›")
}
