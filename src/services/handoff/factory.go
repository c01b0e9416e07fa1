package handoff

import (
	"context"

	"Backend-FormFlow-007/src/config"
	"Backend-FormFlow-007/src/database"
)

// FromConfig picks the carrier named by cfg.HandoffStore. The returned close
// func releases any connection the carrier holds.
func FromConfig(ctx context.Context, cfg *config.Config) (Carrier, func() error, error) {
	if cfg.HandoffStore == config.HandoffStoreRedis {
		client, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisCarrier(client, cfg.HandoffTTL), client.Close, nil
	}
	return NewTokenCarrier(cfg.HandoffSecret, cfg.HandoffTTL), func() error { return nil }, nil
}
