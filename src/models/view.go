package models

// NoInterestsPlaceholder แสดงเมื่อไม่ได้เลือก interest ใดเลย
const NoInterestsPlaceholder = "None selected"

// MissingRecordMessage is shown when the confirmation page has no submission to display.
const MissingRecordMessage = "Error: No form data available"

// ConfirmationItem is one labeled line of the confirmation page.
type ConfirmationItem struct {
	Label string `json:"label" example:"Name"`
	Value string `json:"value" example:"John Doe"`
}

// ConfirmationView is what the confirmation screen renders.
// Exactly one of Items or Error is populated.
type ConfirmationView struct {
	Found bool               `json:"found"`
	Error string             `json:"error,omitempty"`
	Items []ConfirmationItem `json:"items,omitempty"`
}
