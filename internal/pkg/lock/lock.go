// Package lock serializes actions on a player. A trade between two players
// acquires both keys together, always in sorted order, so two concurrent
// trades over the same pair cannot deadlock.
package lock

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

//go:generate mockgen -destination=mock/mock_locker.go -package=lockmock github.com/KirkDiggler/rpg-adventure/internal/pkg/lock Locker

// Locker grants exclusive access to a set of keys
type Locker interface {
	// Acquire blocks until every key is held or ctx is done. The returned
	// release func frees all keys and is safe to call more than once.
	Acquire(ctx context.Context, keys ...string) (release func(), err error)
}

// normalize sorts and deduplicates keys
func normalize(keys []string) ([]string, error) {
	if len(keys) == 0 {
		return nil, errors.InvalidArgument("at least one lock key is required")
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			return nil, errors.InvalidArgument("lock key must not be empty")
		}
		out = append(out, k)
	}
	sort.Strings(out)

	uniq := out[:1]
	for _, k := range out[1:] {
		if k != uniq[len(uniq)-1] {
			uniq = append(uniq, k)
		}
	}
	return uniq, nil
}

// contextError converts a done context into a lock error for key
func contextError(ctx context.Context, key string) error {
	err := ctx.Err()
	code := errors.CodeCanceled
	if errors.Is(err, context.DeadlineExceeded) {
		code = errors.CodeDeadlineExceeded
	}
	return errors.WrapWithCode(err, code, "lock not acquired").WithMeta("key", key)
}
