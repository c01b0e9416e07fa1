package tui

import (
	"strings"
	"testing"

	"Backend-FormFlow-007/src/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, app *App, text string) {
	t.Helper()
	send(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(t *testing.T, app *App, keyType tea.KeyType) {
	t.Helper()
	send(t, app, tea.KeyMsg{Type: keyType})
}

func send(t *testing.T, app *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	model, cmd := app.Update(msg)
	require.Same(t, app, model)
	return cmd
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(nil)
	app.Init()
	return app
}

// fillValid walks the form top to bottom: name, email, age, country, gender,
// then ticks coding and music.
func fillValid(t *testing.T, app *App) {
	typeText(t, app, "John Doe")
	press(t, app, tea.KeyTab)
	typeText(t, app, "john.doe@example.com")
	press(t, app, tea.KeyTab)
	typeText(t, app, "25")
	press(t, app, tea.KeyTab)
	press(t, app, tea.KeyRight) // USA
	press(t, app, tea.KeyTab)
	press(t, app, tea.KeyRight) // Male
	press(t, app, tea.KeyTab)
	press(t, app, tea.KeyTab) // skip music for now
	press(t, app, tea.KeyTab)
	press(t, app, tea.KeySpace) // coding
	press(t, app, tea.KeyShiftTab)
	press(t, app, tea.KeyShiftTab)
	press(t, app, tea.KeySpace) // music
}

func TestEntryFieldsFlowIntoDraft(t *testing.T) {
	app := newTestApp(t)
	fillValid(t, app)

	draft := app.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, models.SubmissionDraft{
		FullName:  "John Doe",
		Email:     "john.doe@example.com",
		Age:       "25",
		Country:   "USA",
		Gender:    "Male",
		Interests: models.Interests{Music: true, Coding: true},
	}, *draft)
}

func TestSubmitShowsConfirmation(t *testing.T) {
	app := newTestApp(t)
	fillValid(t, app)
	press(t, app, tea.KeyEnter)

	assert.Equal(t, screenConfirmation, app.screen)
	assert.Nil(t, app.Draft())

	view := app.View()
	assert.Contains(t, view, "Thank You for Your Submission!")
	assert.Contains(t, view, "John Doe")
	assert.Contains(t, view, "john.doe@example.com")
	assert.Contains(t, view, "music, coding")
}

func TestSubmitInvalidStaysOnEntry(t *testing.T) {
	app := newTestApp(t)
	typeText(t, app, "J")
	press(t, app, tea.KeyEnter)

	assert.Equal(t, screenEntry, app.screen)
	view := app.View()
	assert.Contains(t, view, "Name is required and must be at least 2 characters")
	assert.Contains(t, view, "Invalid email format")
	assert.Contains(t, view, "Please select your gender")
	require.NotNil(t, app.Draft())
	assert.Equal(t, "J", app.Draft().FullName)
}

func TestBackToFormStartsFreshDraft(t *testing.T) {
	app := newTestApp(t)
	fillValid(t, app)
	press(t, app, tea.KeyEnter)
	require.Equal(t, screenConfirmation, app.screen)

	typeText(t, app, "b")
	assert.Equal(t, screenEntry, app.screen)
	require.NotNil(t, app.Draft())
	assert.Equal(t, models.SubmissionDraft{}, *app.Draft())
	assert.Nil(t, app.confirmation)
}

func TestCountryCyclesThroughUnselected(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 3; i++ {
		press(t, app, tea.KeyTab)
	}

	var seen []string
	for i := 0; i < len(models.Countries)+1; i++ {
		press(t, app, tea.KeyRight)
		seen = append(seen, app.Draft().Country)
	}
	assert.Equal(t, []string{"USA", "UK", "Canada", "Australia", ""}, seen)

	press(t, app, tea.KeyLeft)
	assert.Equal(t, "Australia", app.Draft().Country)
}

func TestGenderHasNoDefault(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, "", app.Draft().Gender)
	assert.Contains(t, app.View(), "Select your gender")

	for i := 0; i < 4; i++ {
		press(t, app, tea.KeyTab)
	}
	press(t, app, tea.KeyLeft)
	assert.Equal(t, "Female", app.Draft().Gender)
	press(t, app, tea.KeyLeft)
	assert.Equal(t, "Male", app.Draft().Gender)
	press(t, app, tea.KeyLeft)
	assert.Equal(t, "Female", app.Draft().Gender)
}

func TestConfirmationScreenWithoutRecord(t *testing.T) {
	screen := newConfirmationScreen(nil)
	view := screen.view()
	assert.Contains(t, view, "Error: No form data available")
	assert.True(t, strings.Contains(view, "go back to form"))
}

func TestViewFitsWindowWidth(t *testing.T) {
	app := newTestApp(t)
	wide := app.View()
	require.Greater(t, lipgloss.Width(wide), 20)

	send(t, app, tea.WindowSizeMsg{Width: 20, Height: 10})
	for _, line := range strings.Split(app.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20, line)
	}

	fillValid(t, app)
	press(t, app, tea.KeyEnter)
	require.Equal(t, screenConfirmation, app.screen)
	for _, line := range strings.Split(app.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20, line)
	}
}

func TestQuitKeys(t *testing.T) {
	app := newTestApp(t)
	cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
