package routes

import (
	"Backend-FormFlow-007/src/controllers"
	"Backend-FormFlow-007/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes กำหนด route ของหน้าฟอร์มและหน้า thank-you
func formRoutes(router fiber.Router, fc *controllers.FormController, loadSubmission fiber.Handler) {
	router.Get("/", fc.ShowForm)
	router.Post("/", fc.SubmitForm)
	router.Get(middleware.ConfirmationPath, loadSubmission, fc.ShowConfirmation)
}
