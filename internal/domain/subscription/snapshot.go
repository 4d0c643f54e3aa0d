package subscription

import (
	"time"
)

// Entry is one tier's state as reported by the billing source.
type Entry struct {
	ExpiresDate           time.Time  `json:"expires_date"`
	PurchaseDate          time.Time  `json:"purchase_date"`
	Store                 string     `json:"store"`
	UnsubscribeDetectedAt *time.Time `json:"unsubscribe_detected_at"`
}

// Snapshot is the resolved subscription state of a team. It is derived,
// never persisted: rebuilt from the billing source on every gate call.
type Snapshot struct {
	TierName  string    `json:"tier_name"`
	Capacity  int       `json:"capacity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Resolve selects the tier with the most future expiry among the entries
// present. When several tiers are live at once the latest expiry wins; when
// all are expired the least-past expiry still wins, so callers always get a
// meaningful expiry date to report. No entries means no snapshot.
func Resolve(entries map[string]Entry) *Snapshot {
	var snap *Snapshot
	for _, tier := range Tiers {
		entry, ok := entries[tier.Name]
		if !ok {
			continue
		}
		if snap == nil || entry.ExpiresDate.After(snap.ExpiresAt) {
			snap = &Snapshot{
				TierName:  tier.Name,
				Capacity:  tier.Capacity,
				ExpiresAt: entry.ExpiresDate,
			}
		}
	}
	return snap
}

// ActiveOn reports whether the subscription covers the given day. Both sides
// are truncated to day granularity, so a subscription expiring today is
// still active; one that expired yesterday is not.
func (s *Snapshot) ActiveOn(now time.Time) bool {
	return !startOfDay(s.ExpiresAt).Before(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
