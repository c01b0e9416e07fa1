package forms

import (
	"strings"

	"Backend-FormFlow-007/src/models"
)

// SelectedInterests lists the checked interests in fixed enumeration order.
func SelectedInterests(interests models.Interests) []string {
	selected := make([]string, 0, len(models.InterestKeys))
	for _, key := range models.InterestKeys {
		if checked, _ := interests.Get(key); checked {
			selected = append(selected, key)
		}
	}
	return selected
}

// InterestsLabel joins the selected interests with ", " or returns the placeholder.
func InterestsLabel(interests models.Interests) string {
	selected := SelectedInterests(interests)
	if len(selected) == 0 {
		return models.NoInterestsPlaceholder
	}
	return strings.Join(selected, ", ")
}

// NewConfirmationView shapes a record for display. A nil record yields the
// missing-record error state.
func NewConfirmationView(record *models.SubmissionRecord) models.ConfirmationView {
	if record == nil {
		return models.ConfirmationView{Found: false, Error: models.MissingRecordMessage}
	}
	return models.ConfirmationView{
		Found: true,
		Items: []models.ConfirmationItem{
			{Label: "Name", Value: record.FullName},
			{Label: "Email", Value: record.Email},
			{Label: "Age", Value: record.Age},
			{Label: "Country", Value: record.Country},
			{Label: "Gender", Value: record.Gender},
			{Label: "Interests", Value: InterestsLabel(record.Interests)},
		},
	}
}
