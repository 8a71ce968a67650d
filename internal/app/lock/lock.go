// Package lock serializes compliance mutations per (ship, year). Local
// guards a single process; Redis guards every instance sharing one Redis.
package lock

import (
	"context"
	"fmt"
	"sort"
)

// Locker acquires every key or none. The returned release func unlocks all
// keys acquired by the call and is safe to call once.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (release func(), err error)
}

// ShipYearKey names the critical section covering one ship's balance and
// ledger for a year.
func ShipYearKey(shipID string, year int) string {
	return fmt.Sprintf("cb:%s:%d", shipID, year)
}

// normalize sorts and deduplicates keys so that callers locking overlapping
// sets always acquire in the same order.
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
