package tui

import (
	"fmt"
	"strings"

	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/forms"
)

type confirmationScreen struct {
	data models.ConfirmationView
}

// newConfirmationScreen takes the one record this screen will ever show.
// A nil record renders the missing-record state.
func newConfirmationScreen(record *models.SubmissionRecord) *confirmationScreen {
	return &confirmationScreen{data: forms.NewConfirmationView(record)}
}

func (s *confirmationScreen) view() string {
	var b strings.Builder
	if !s.data.Found {
		b.WriteString(errorStyle.Render(s.data.Error))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/b go back to form • q quit"))
		return b.String()
	}

	b.WriteString(successStyle.Render("Thank You for Your Submission!"))
	b.WriteString("\n\nYour form has been successfully submitted.\n\n")
	b.WriteString(titleStyle.Render("Your Information:"))
	b.WriteString("\n")
	for _, item := range s.data.Items {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(item.Label+":"), item.Value)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter/b fill another form • q quit"))
	return b.String()
}
