package forms

import (
	"testing"

	"Backend-FormFlow-007/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedInterestsFollowEnumerationOrder(t *testing.T) {
	draft := NewDraft()
	// picked sports first, then music
	draft, _ = UpdateField(draft, "interest-sports", true)
	draft, _ = UpdateField(draft, "interest-music", true)

	assert.Equal(t, []string{"music", "sports"}, SelectedInterests(draft.Interests))
	assert.Equal(t, "music, sports", InterestsLabel(draft.Interests))
	// idempotent
	assert.Equal(t, InterestsLabel(draft.Interests), InterestsLabel(draft.Interests))
}

func TestInterestsLabel(t *testing.T) {
	assert.Equal(t, "None selected", InterestsLabel(models.Interests{}))
	assert.Equal(t, "coding", InterestsLabel(models.Interests{Coding: true}))
	assert.Equal(t, "music, sports, coding", InterestsLabel(models.Interests{Music: true, Sports: true, Coding: true}))
}

func TestConfirmationViewRoundTrip(t *testing.T) {
	draft := models.SubmissionDraft{
		FullName:  "  Sarah  Brown ",
		Email:     "sarah@example.com",
		Age:       "28",
		Country:   "Canada",
		Gender:    "Female",
		Interests: models.Interests{Music: true, Sports: true, Coding: true},
	}
	record, errs := Submit(draft)
	require.NotNil(t, record, errs)

	view := NewConfirmationView(record)
	require.True(t, view.Found)
	assert.Empty(t, view.Error)
	assert.Equal(t, []models.ConfirmationItem{
		{Label: "Name", Value: "  Sarah  Brown "},
		{Label: "Email", Value: "sarah@example.com"},
		{Label: "Age", Value: "28"},
		{Label: "Country", Value: "Canada"},
		{Label: "Gender", Value: "Female"},
		{Label: "Interests", Value: "music, sports, coding"},
	}, view.Items)
}

func TestConfirmationViewMissingRecord(t *testing.T) {
	view := NewConfirmationView(nil)
	assert.False(t, view.Found)
	assert.Equal(t, "Error: No form data available", view.Error)
	assert.Empty(t, view.Items)
}
