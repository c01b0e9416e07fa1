package handoff

import (
	"context"
	"errors"

	"Backend-FormFlow-007/src/models"
)

// ErrRecordNotFound covers every way a token can fail to yield a record:
// missing, expired, tampered or already redeemed.
var ErrRecordNotFound = errors.New("submission record not found")

// Carrier moves one accepted record from the submit handler to the confirmation page.
type Carrier interface {
	// Issue hands the record over and returns the token that travels with the redirect.
	Issue(ctx context.Context, record models.SubmissionRecord) (string, error)
	// Redeem returns the record behind token, or ErrRecordNotFound.
	Redeem(ctx context.Context, token string) (*models.SubmissionRecord, error)
}
