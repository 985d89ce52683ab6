// Package rental holds the pure state transitions of a user's rental set:
// deterministic return-date arithmetic and idempotent set membership keyed
// by game id.
package rental

import (
	"time"

	"gameswap/internal/domain/entity"
)

// Period is the fixed loan duration added to "now" when a game is saved.
const Period = 14 * 24 * time.Hour

// dateLayout renders dates as MMM-DD-YYYY, e.g. "Jan-02-2026".
const dateLayout = "Jan-02-2006"

// ReturnDate computes the informational return date for a rental created
// at the given time. Deterministic for a fixed now.
func ReturnDate(now time.Time) string {
	return now.Add(Period).Format(dateLayout)
}

// Upsert adds the record to the set unless a record for the same game id
// is already present, in which case the set is returned unchanged.
// Relative order of existing members is preserved.
func Upsert(set []entity.RentalRecord, record entity.RentalRecord) []entity.RentalRecord {
	for _, existing := range set {
		if existing.GameID == record.GameID {
			return set
		}
	}

	return append(set, record)
}

// Remove deletes any record matching the game id. Removing an absent game
// is a no-op. Relative order of untouched members is preserved.
func Remove(set []entity.RentalRecord, gameID string) []entity.RentalRecord {
	kept := set[:0:0]
	for _, existing := range set {
		if existing.GameID != gameID {
			kept = append(kept, existing)
		}
	}

	return kept
}
