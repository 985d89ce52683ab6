package service

import (
	"context"

	"gameswap/internal/domain/entity"
)

// ExternalCatalog abstracts the third-party game-metadata service so the
// real HTTP client and in-memory fakes are interchangeable.
type ExternalCatalog interface {
	// SearchByTitle runs an exact-semantics title search and aggregates
	// every continuation page, preserving upstream order and duplicates.
	// Fails with the external-service error on any page failure.
	SearchByTitle(ctx context.Context, title string) ([]entity.ExternalSearchResult, error)

	// FetchBySlug fetches one item by its unique slug and normalizes it.
	// Fails with the external-service error on transport/status problems
	// and with the normalization error on incomplete payloads.
	FetchBySlug(ctx context.Context, slug string) (*entity.ExternalGameDetail, error)
}
