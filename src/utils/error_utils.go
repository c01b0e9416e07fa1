// error_utils.go
package utils

import (
	"Backend-FormFlow-007/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func HandleValidationError(c *fiber.Ctx, errs models.ValidationErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
		Status:  fiber.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}
