package handoff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Backend-FormFlow-007/src/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "submission:"

// RedisCarrier parks the record in Redis under an opaque key and deletes it on
// first read, so a reload of the confirmation page finds nothing.
type RedisCarrier struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCarrier(client *redis.Client, ttl time.Duration) *RedisCarrier {
	return &RedisCarrier{client: client, ttl: ttl}
}

func (r *RedisCarrier) Issue(ctx context.Context, record models.SubmissionRecord) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode submission record: %w", err)
	}

	token := uuid.NewString()
	if err := r.client.Set(ctx, keyPrefix+token, payload, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("store submission record: %w", err)
	}
	return token, nil
}

func (r *RedisCarrier) Redeem(ctx context.Context, token string) (*models.SubmissionRecord, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrRecordNotFound)
	}
	// tokens are uuids; anything else was never issued here
	if _, err := uuid.Parse(token); err != nil {
		return nil, fmt.Errorf("%w: malformed token", ErrRecordNotFound)
	}

	payload, err := r.client.GetDel(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: token %s", ErrRecordNotFound, token)
		}
		return nil, fmt.Errorf("redeem submission record: %w", err)
	}

	var record models.SubmissionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decode submission record: %w", err)
	}
	return &record, nil
}
