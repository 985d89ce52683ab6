package usecase

import (
	"context"

	"gameswap/internal/domain/entity"
)

// CatalogUsecase defines the browse/search operations over the local
// library and the external metadata service.
type CatalogUsecase interface {
	// Library returns the full local catalog.
	Library(ctx context.Context) ([]entity.Game, error)

	// Search matches catalog titles against the given text as a literal,
	// case-insensitive substring.
	Search(ctx context.Context, title string) ([]entity.Game, error)

	// ExternalSearch looks the title up on the metadata service. This is
	// the user-facing convenience path: failures are logged and surface
	// as an empty result, never as an error.
	ExternalSearch(ctx context.Context, title string) ([]entity.ExternalSearchResult, error)

	// ExternalDetail fetches one item by slug, with the description
	// sanitized. Same graceful-degradation policy as ExternalSearch.
	ExternalDetail(ctx context.Context, slug string) (*entity.ExternalGameDetail, error)
}
