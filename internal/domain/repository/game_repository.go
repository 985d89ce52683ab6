package repository

import (
	"context"

	"gameswap/internal/domain/entity"
)

// GameRepository defines read access to the locally curated game library.
// Catalog writes happen through an out-of-core seeding process.
type GameRepository interface {
	// FindAll returns the full catalog, unfiltered and unpaginated.
	FindAll(ctx context.Context) ([]entity.Game, error)

	// SearchByTitle returns catalog entries whose title contains the
	// given text, matched case-insensitively. The input is treated as a
	// literal substring; pattern metacharacters carry no meaning.
	SearchByTitle(ctx context.Context, title string) ([]entity.Game, error)

	// FindByIDs returns the games matching the given ids. Unknown ids
	// are skipped, not an error.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error)
}
