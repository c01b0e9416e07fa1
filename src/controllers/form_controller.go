package controllers

import (
	"time"

	"Backend-FormFlow-007/src/middleware"
	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/forms"
	"Backend-FormFlow-007/src/services/handoff"
	"Backend-FormFlow-007/src/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormController serves the entry form and the confirmation page.
type FormController struct {
	carrier handoff.Carrier
	ttl     time.Duration
	log     *zap.Logger
}

func NewFormController(carrier handoff.Carrier, ttl time.Duration, log *zap.Logger) *FormController {
	return &FormController{carrier: carrier, ttl: ttl, log: log}
}

// ShowForm แสดงฟอร์มเปล่า
func (fc *FormController) ShowForm(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return views.RenderForm(c, views.NewFormPage(forms.NewDraft(), nil))
}

// SubmitForm validates the posted form. Invalid input re-renders the form with
// errors; valid input is handed to the confirmation page via redirect.
func (fc *FormController) SubmitForm(c *fiber.Ctx) error {
	draft, err := draftFromForm(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	record, errs := forms.Submit(draft)
	if record == nil {
		fc.log.Debug("form rejected", zap.Any("errors", errs))
		c.Status(fiber.StatusUnprocessableEntity).Type("html", "utf-8")
		return views.RenderForm(c, views.NewFormPage(draft, errs))
	}

	token, err := fc.carrier.Issue(c.UserContext(), *record)
	if err != nil {
		return err
	}
	fc.log.Info("form accepted", zap.String("submission", record.ID))

	middleware.SetSubmissionCookie(c, token, fc.ttl)
	return c.Redirect(middleware.ConfirmationPath, fiber.StatusSeeOther)
}

// ShowConfirmation renders whatever LoadSubmission found; nothing means the
// page was reached directly or reloaded.
func (fc *FormController) ShowConfirmation(c *fiber.Ctx) error {
	view := forms.NewConfirmationView(middleware.SubmissionFrom(c))
	c.Type("html", "utf-8")
	return views.RenderConfirmation(c, view)
}

// draftFromForm applies each posted field to a fresh draft. Unchecked boxes
// are not posted and stay false.
func draftFromForm(c *fiber.Ctx) (models.SubmissionDraft, error) {
	draft := forms.NewDraft()
	var err error
	for _, field := range []string{
		models.FieldFullName,
		models.FieldEmail,
		models.FieldAge,
		models.FieldCountry,
		models.FieldGender,
	} {
		if draft, err = forms.UpdateField(draft, field, c.FormValue(field)); err != nil {
			return draft, err
		}
	}
	for _, key := range models.InterestKeys {
		name := forms.InterestInputName(key)
		if draft, err = forms.UpdateField(draft, name, c.FormValue(name) != ""); err != nil {
			return draft, err
		}
	}
	return draft, nil
}
