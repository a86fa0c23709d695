// internal/common/cache/optimistic.go
package cache

import (
	"context"
	"strconv"
	"time"
)

// OptimisticToggle implements the archive-star flow: flip the cached value
// immediately, fire the mutation, revert on failure, and reconcile to the
// server's authoritative value on success when it disagrees with the local
// guess. The returned bool is the final displayed state.
func OptimisticToggle(
	ctx context.Context,
	c Cache,
	key string,
	current bool,
	ttl time.Duration,
	mutate func(ctx context.Context) (bool, error),
) (bool, error) {
	flipped := !current

	if err := c.Set(ctx, key, strconv.FormatBool(flipped), ttl); err != nil {
		return current, err
	}

	server, err := mutate(ctx)
	if err != nil {
		// Roll back the optimistic flip.
		if revertErr := c.Set(ctx, key, strconv.FormatBool(current), ttl); revertErr != nil {
			return current, revertErr
		}
		return current, err
	}

	if server != flipped {
		if err := c.Set(ctx, key, strconv.FormatBool(server), ttl); err != nil {
			return server, err
		}
	}
	return server, nil
}
