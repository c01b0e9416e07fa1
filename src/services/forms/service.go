package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"Backend-FormFlow-007/src/models"

	"github.com/google/uuid"
)

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrInvalidValue = errors.New("invalid value for form field")
)

// NewDraft returns an empty draft with every field defined and all interests off.
func NewDraft() models.SubmissionDraft {
	return models.SubmissionDraft{}
}

// InterestInputName builds the composite checkbox key, e.g. "interest-music".
func InterestInputName(interest string) string {
	return models.InterestCategory + "-" + interest
}

// UpdateField returns a copy of draft with exactly the named field replaced.
// Text fields take a string; checkbox keys ("interest-<name>") take a bool.
// No validation happens here.
func UpdateField(draft models.SubmissionDraft, name string, value any) (models.SubmissionDraft, error) {
	if category, interest, ok := strings.Cut(name, "-"); ok && category == models.InterestCategory {
		checked, isBool := value.(bool)
		if !isBool {
			return draft, fmt.Errorf("%w: %s expects a bool, got %T", ErrInvalidValue, name, value)
		}
		interests, err := draft.Interests.With(interest, checked)
		if err != nil {
			return draft, fmt.Errorf("%w: %v", ErrUnknownField, err)
		}
		draft.Interests = interests
		return draft, nil
	}

	text, isString := value.(string)
	if !isString {
		return draft, fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidValue, name, value)
	}

	switch name {
	case models.FieldFullName:
		draft.FullName = text
	case models.FieldEmail:
		draft.Email = text
	case models.FieldAge:
		draft.Age = text
	case models.FieldCountry:
		draft.Country = text
	case models.FieldGender:
		draft.Gender = text
	default:
		return draft, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return draft, nil
}

// Submit validates draft. On failure it returns the errors and no record;
// on success it returns a snapshot of the draft ready for the confirmation page.
func Submit(draft models.SubmissionDraft) (*models.SubmissionRecord, models.ValidationErrors) {
	errs, ok := Validate(draft)
	if !ok {
		return nil, errs
	}
	record := NewRecord(draft, time.Now())
	return &record, nil
}

// NewRecord copies draft into a fresh record. The draft has no reference fields,
// so the copy shares nothing with it.
func NewRecord(draft models.SubmissionDraft, at time.Time) models.SubmissionRecord {
	return models.SubmissionRecord{
		ID:          uuid.NewString(),
		FullName:    draft.FullName,
		Email:       draft.Email,
		Age:         draft.Age,
		Country:     draft.Country,
		Gender:      draft.Gender,
		Interests:   draft.Interests,
		SubmittedAt: at.UTC(),
	}
}
