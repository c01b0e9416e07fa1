package controllers

import (
	"Backend-FormFlow-007/src/middleware"
	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/forms"
	"Backend-FormFlow-007/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// --------- Input DTOs ---------

// draftIn starts from a defined draft so omitted keys keep their empty values.
func draftIn(c *fiber.Ctx) (models.SubmissionDraft, error) {
	draft := forms.NewDraft()
	if err := c.BodyParser(&draft); err != nil {
		return draft, err
	}
	return draft, nil
}

// ValidateDraft godoc
// @Summary      Validate a draft
// @Description  Runs every field rule and reports the failing fields without submitting
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        draft  body      models.SubmissionDraft  true  "Form draft"
// @Success      200    {object}  models.ValidateResponse
// @Failure      400    {object}  models.ErrorResponse
// @Router       /api/drafts/validate [post]
func (fc *FormController) ValidateDraft(c *fiber.Ctx) error {
	draft, err := draftIn(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	errs, ok := forms.Validate(draft)
	return c.JSON(models.ValidateResponse{Valid: ok, Errors: errs})
}

// CreateSubmission godoc
// @Summary      Submit a draft
// @Description  Validates the draft; on success returns the record and a one-shot token for the confirmation endpoint
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        draft  body      models.SubmissionDraft  true  "Form draft"
// @Success      200    {object}  models.SubmitResponse
// @Failure      400    {object}  models.ErrorResponse
// @Failure      422    {object}  models.ValidationErrorResponse
// @Router       /api/submissions [post]
func (fc *FormController) CreateSubmission(c *fiber.Ctx) error {
	draft, err := draftIn(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	record, errs := forms.Submit(draft)
	if record == nil {
		return utils.HandleValidationError(c, errs)
	}

	token, err := fc.carrier.Issue(c.UserContext(), *record)
	if err != nil {
		fc.log.Error("issue submission token", zap.Error(err))
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to hand off submission")
	}
	fc.log.Info("submission accepted", zap.String("submission", record.ID))

	return c.JSON(models.SubmitResponse{Token: token, Record: *record})
}

// GetConfirmation godoc
// @Summary      Confirmation view
// @Description  Redeems the token once and returns the six labeled fields
// @Tags         submissions
// @Produce      json
// @Param        Authorization  header    string  true  "Bearer <token>"
// @Success      200            {object}  models.ConfirmationView
// @Failure      404            {object}  models.ErrorResponse
// @Router       /api/submissions/confirmation [get]
func (fc *FormController) GetConfirmation(c *fiber.Ctx) error {
	record := middleware.SubmissionFrom(c)
	if record == nil {
		return utils.HandleError(c, fiber.StatusNotFound, models.MissingRecordMessage)
	}
	return c.JSON(forms.NewConfirmationView(record))
}
