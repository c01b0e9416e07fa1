package handoff

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"Backend-FormFlow-007/src/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "formflow"

type submissionClaims struct {
	Record models.SubmissionRecord `json:"record"`
	jwt.RegisteredClaims
}

// TokenCarrier embeds the record in a signed JWT. The only server-side state is
// the set of token IDs already redeemed, kept until each token would expire, so
// a token is honoured once per process whether it arrives as a cookie or a
// bearer header.
type TokenCarrier struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu       sync.Mutex
	redeemed map[string]time.Time
}

func NewTokenCarrier(secret string, ttl time.Duration) *TokenCarrier {
	return &TokenCarrier{
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		redeemed: make(map[string]time.Time),
	}
}

func (t *TokenCarrier) Issue(_ context.Context, record models.SubmissionRecord) (string, error) {
	now := t.now()
	jti := record.ID
	if jti == "" {
		jti = uuid.NewString()
	}
	claims := submissionClaims{
		Record: record,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign submission token: %w", err)
	}
	return signed, nil
}

func (t *TokenCarrier) Redeem(_ context.Context, tokenStr string) (*models.SubmissionRecord, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("%w: empty token", ErrRecordNotFound)
	}

	keyFunc := func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}
	token, err := jwt.ParseWithClaims(tokenStr, &submissionClaims{}, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrRecordNotFound, err)
	}

	claims, ok := token.Claims.(*submissionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", ErrRecordNotFound)
	}
	if err := t.markRedeemed(claims); err != nil {
		return nil, err
	}
	record := claims.Record
	return &record, nil
}

// markRedeemed records the token ID, failing if it was seen before. Entries
// whose token has expired are pruned on the way since jwt rejects those anyway.
func (t *TokenCarrier) markRedeemed(claims *submissionClaims) error {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return fmt.Errorf("%w: token has no id or expiry", ErrRecordNotFound)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	for id, exp := range t.redeemed {
		if !exp.After(now) {
			delete(t.redeemed, id)
		}
	}
	if _, seen := t.redeemed[claims.ID]; seen {
		return fmt.Errorf("%w: token already redeemed", ErrRecordNotFound)
	}
	t.redeemed[claims.ID] = claims.ExpiresAt.Time
	return nil
}

// pending reports how many redeemed token IDs are still remembered.
func (t *TokenCarrier) pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.redeemed)
}
