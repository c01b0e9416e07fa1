package forms

import (
	"testing"
	"time"

	"Backend-FormFlow-007/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftIsFullyDefined(t *testing.T) {
	draft := NewDraft()
	assert.Equal(t, "", draft.FullName)
	for _, key := range models.InterestKeys {
		checked, ok := draft.Interests.Get(key)
		assert.True(t, ok, key)
		assert.False(t, checked, key)
	}
}

func TestUpdateFieldReplacesOnlyTheNamedField(t *testing.T) {
	base := validDraft()

	tests := []struct {
		name  string
		value any
		check func(models.SubmissionDraft) bool
	}{
		{models.FieldFullName, "Jane", func(d models.SubmissionDraft) bool { return d.FullName == "Jane" }},
		{models.FieldEmail, "jane@example.com", func(d models.SubmissionDraft) bool { return d.Email == "jane@example.com" }},
		{models.FieldAge, "31", func(d models.SubmissionDraft) bool { return d.Age == "31" }},
		{models.FieldCountry, "UK", func(d models.SubmissionDraft) bool { return d.Country == "UK" }},
		{models.FieldGender, "Female", func(d models.SubmissionDraft) bool { return d.Gender == "Female" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := UpdateField(base, tt.name, tt.value)
			require.NoError(t, err)
			assert.True(t, tt.check(updated))

			// put the original value back: nothing else may differ
			restored, err := UpdateField(updated, tt.name, fieldValue(base, tt.name))
			require.NoError(t, err)
			assert.Equal(t, base, restored)
		})
	}
}

func fieldValue(d models.SubmissionDraft, name string) string {
	switch name {
	case models.FieldFullName:
		return d.FullName
	case models.FieldEmail:
		return d.Email
	case models.FieldAge:
		return d.Age
	case models.FieldCountry:
		return d.Country
	default:
		return d.Gender
	}
}

func TestUpdateFieldInterestLeavesSiblingsAlone(t *testing.T) {
	draft := NewDraft()

	draft, err := UpdateField(draft, "interest-sports", true)
	require.NoError(t, err)
	draft, err = UpdateField(draft, "interest-music", true)
	require.NoError(t, err)
	assert.Equal(t, models.Interests{Music: true, Sports: true}, draft.Interests)

	draft, err = UpdateField(draft, InterestInputName(models.InterestSports), false)
	require.NoError(t, err)
	assert.Equal(t, models.Interests{Music: true}, draft.Interests)
	assert.Equal(t, "", draft.FullName)
}

func TestUpdateFieldDoesNotMutateInput(t *testing.T) {
	original := validDraft()
	_, err := UpdateField(original, "interest-music", false)
	require.NoError(t, err)
	assert.True(t, original.Interests.Music)
}

func TestUpdateFieldErrors(t *testing.T) {
	draft := validDraft()

	_, err := UpdateField(draft, "nickname", "JD")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = UpdateField(draft, "interest-painting", true)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = UpdateField(draft, models.FieldAge, 25)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = UpdateField(draft, "interest-music", "on")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSubmitInvalidReturnsNoRecord(t *testing.T) {
	draft := validDraft()
	draft.Gender = ""

	record, errs := Submit(draft)
	assert.Nil(t, record)
	assert.Equal(t, models.ValidationErrors{models.FieldGender: "Please select your gender"}, errs)
}

func TestSubmitSnapshotsTheDraft(t *testing.T) {
	draft := validDraft()
	record, errs := Submit(draft)
	require.NotNil(t, record)
	require.Empty(t, errs)

	assert.NotEmpty(t, record.ID)
	assert.False(t, record.SubmittedAt.IsZero())
	assert.Equal(t, draft.FullName, record.FullName)
	assert.Equal(t, draft.Interests, record.Interests)

	// later edits to the draft do not reach the record
	draft, _ = UpdateField(draft, models.FieldFullName, "Someone Else")
	draft, _ = UpdateField(draft, "interest-sports", true)
	assert.Equal(t, "John Doe", record.FullName)
	assert.False(t, record.Interests.Sports)
}

func TestNewRecordUsesUTC(t *testing.T) {
	at := time.Date(2025, 3, 11, 9, 0, 0, 0, time.FixedZone("ICT", 7*3600))
	record := NewRecord(validDraft(), at)
	assert.Equal(t, time.UTC, record.SubmittedAt.Location())
	assert.True(t, at.Equal(record.SubmittedAt))
}
