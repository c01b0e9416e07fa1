package routes

import (
	"Backend-FormFlow-007/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func submissionRoutes(router fiber.Router, fc *controllers.FormController, loadSubmission fiber.Handler) {
	router.Post("/drafts/validate", fc.ValidateDraft)

	submissions := router.Group("/submissions")
	submissions.Post("/", fc.CreateSubmission)
	submissions.Get("/confirmation", loadSubmission, fc.GetConfirmation)
}
