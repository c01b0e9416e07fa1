package views

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/forms"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("views").
		Funcs(template.FuncMap{"lower": strings.ToLower}).
		ParseFS(templateFS, "templates/*.html"),
)

// InterestOption is one checkbox on the entry form.
type InterestOption struct {
	InputName string
	Label     string
	Checked   bool
}

// FormPage is the data behind the entry form template.
type FormPage struct {
	Draft     models.SubmissionDraft
	Errors    models.ValidationErrors
	Countries []models.Option
	Genders   []models.Option
	Interests []InterestOption
}

func NewFormPage(draft models.SubmissionDraft, errs models.ValidationErrors) FormPage {
	interests := make([]InterestOption, 0, len(models.InterestKeys))
	for _, key := range models.InterestKeys {
		checked, _ := draft.Interests.Get(key)
		interests = append(interests, InterestOption{
			InputName: forms.InterestInputName(key),
			Label:     strings.ToUpper(key[:1]) + key[1:],
			Checked:   checked,
		})
	}
	if errs == nil {
		errs = models.ValidationErrors{}
	}
	return FormPage{
		Draft:     draft,
		Errors:    errs,
		Countries: models.Countries,
		Genders:   models.Genders,
		Interests: interests,
	}
}

func RenderForm(w io.Writer, page FormPage) error {
	return templates.ExecuteTemplate(w, "form", page)
}

func RenderConfirmation(w io.Writer, view models.ConfirmationView) error {
	return templates.ExecuteTemplate(w, "thank_you", view)
}
