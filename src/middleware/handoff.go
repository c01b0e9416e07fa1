package middleware

import (
	"errors"
	"strings"
	"time"

	"Backend-FormFlow-007/src/models"
	"Backend-FormFlow-007/src/services/handoff"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// SubmissionCookie carries the handoff token from the submit redirect to /thank-you.
	SubmissionCookie = "submission_token"
	// ConfirmationPath is the page the cookie is scoped to.
	ConfirmationPath = "/thank-you"

	submissionLocal = "submission"
)

// SetSubmissionCookie attaches token to the redirect response.
func SetSubmissionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SubmissionCookie,
		Value:    token,
		Path:     ConfirmationPath,
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSubmissionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SubmissionCookie,
		Value:    "",
		Path:     ConfirmationPath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// LoadSubmission redeems the handoff token (cookie, or Bearer header for API
// callers) and stores the record in c.Locals. A missing or unusable token is
// not an error here: the handler renders the absent-record state instead.
// The cookie is cleared after the read so the record is shown once.
func LoadSubmission(carrier handoff.Carrier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SubmissionCookie)
		if token != "" {
			clearSubmissionCookie(c)
		} else if authHeader := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			log.Debug("confirmation reached without a submission token", zap.String("path", c.Path()))
			return c.Next()
		}

		record, err := carrier.Redeem(c.UserContext(), token)
		switch {
		case err == nil:
			c.Locals(submissionLocal, record)
		case errors.Is(err, handoff.ErrRecordNotFound):
			log.Info("submission token not redeemable", zap.Error(err))
		default:
			log.Error("redeem submission token", zap.Error(err))
		}
		return c.Next()
	}
}

// SubmissionFrom returns the record loaded by LoadSubmission, or nil.
func SubmissionFrom(c *fiber.Ctx) *models.SubmissionRecord {
	record, _ := c.Locals(submissionLocal).(*models.SubmissionRecord)
	return record
}
