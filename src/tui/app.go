// Package tui is the terminal front-end: an entry form screen and a
// confirmation screen, driven by bubbletea.
//
// The confirmation screen is built from the accepted record passed to its
// constructor; going back discards it and starts a fresh draft.
package tui

import (
	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/forms"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// screen represents which view is showing
type screen int

const (
	screenEntry screen = iota
	screenConfirmation
)

// App is the root bubbletea model.
type App struct {
	screen       screen
	entry        *entryForm
	confirmation *confirmationScreen
	log          *zap.Logger

	// terminal width from the last WindowSizeMsg; 0 until one arrives
	width int
}

func NewApp(log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		screen: screenEntry,
		entry:  newEntryForm(),
		log:    log,
	}
}

func (a *App) Init() tea.Cmd {
	return a.entry.focusCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			return a, tea.Quit
		}
	}

	switch a.screen {
	case screenConfirmation:
		return a.updateConfirmation(msg)
	default:
		return a.updateEntry(msg)
	}
}

func (a *App) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return a.submit()
	}
	cmd := a.entry.update(msg)
	return a, cmd
}

func (a *App) submit() (tea.Model, tea.Cmd) {
	record, errs := forms.Submit(a.entry.draft)
	if record == nil {
		a.entry.errors = errs
		a.log.Debug("entry rejected", zap.Int("errors", len(errs)))
		return a, nil
	}

	a.log.Info("entry accepted", zap.String("submission", record.ID))
	a.confirmation = newConfirmationScreen(record)
	a.entry = nil
	a.screen = screenConfirmation
	return a, nil
}

func (a *App) updateConfirmation(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch key.String() {
	case "enter", "b":
		a.confirmation = nil
		a.entry = newEntryForm()
		a.screen = screenEntry
		return a, a.entry.focusCmd()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) View() string {
	var out string
	if a.screen == screenConfirmation {
		out = a.confirmation.view()
	} else {
		out = a.entry.view()
	}
	if a.width > 0 {
		// ตัดบรรทัดที่ยาวเกินหน้าจอ ไม่ให้ terminal wrap เอง
		out = lipgloss.NewStyle().MaxWidth(a.width).Render(out)
	}
	return out
}

// Draft exposes the in-progress draft; nil when the confirmation screen is up.
func (a *App) Draft() *models.SubmissionDraft {
	if a.entry == nil {
		return nil
	}
	draft := a.entry.draft
	return &draft
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(log *zap.Logger) error {
	_, err := tea.NewProgram(NewApp(log), tea.WithAltScreen()).Run()
	return err
}
