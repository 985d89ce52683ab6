package repository

import (
	"context"

	"gameswap/internal/domain/entity"
)

// SearchLogRepository is the audit sink for external title searches.
// It keeps only the most recent result set (overwrite semantics, no key);
// an out-of-core seeding process consumes it.
type SearchLogRepository interface {
	// RecordSearch replaces the stored result set with the given one.
	RecordSearch(ctx context.Context, title string, results []entity.ExternalSearchResult) error
}
