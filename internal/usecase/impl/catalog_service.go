package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"gameswap/internal/domain/entity"
	"gameswap/internal/domain/repository"
	"gameswap/internal/domain/service"
	"gameswap/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	gameRepo      repository.GameRepository
	searchLogRepo repository.SearchLogRepository
	external      service.ExternalCatalog
	sanitizer     service.TextSanitizer
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	GameRepo      repository.GameRepository
	SearchLogRepo repository.SearchLogRepository
	External      service.ExternalCatalog
	Sanitizer     service.TextSanitizer
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		gameRepo:      params.GameRepo,
		searchLogRepo: params.SearchLogRepo,
		external:      params.External,
		sanitizer:     params.Sanitizer,
		logger:        params.Logger,
	}
}

// Library returns the full local catalog.
func (srv *catalogService) Library(ctx context.Context) ([]entity.Game, error) {
	games, err := srv.gameRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list library")
	}

	return games, nil
}

// Search matches local catalog titles as a case-insensitive literal substring.
func (srv *catalogService) Search(ctx context.Context, title string) ([]entity.Game, error) {
	games, err := srv.gameRepo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search library")
	}

	return games, nil
}

// ExternalSearch runs the external title lookup. Browsing degrades
// gracefully: any failure is logged and returned as an empty result.
// A successful search is additionally recorded in the audit sink, on a
// best-effort basis.
func (srv *catalogService) ExternalSearch(ctx context.Context, title string) ([]entity.ExternalSearchResult, error) {
	results, err := srv.external.SearchByTitle(ctx, title)
	if err != nil {
		srv.logger.Warn("External search failed", slog.String("title", title), slog.Any("error", err))

		return nil, nil
	}

	if err := srv.searchLogRepo.RecordSearch(ctx, title, results); err != nil {
		// Secondary effect only: the search result still stands.
		srv.logger.Warn("Failed to record search history", slog.String("title", title), slog.Any("error", err))
	}

	return results, nil
}

// ExternalDetail fetches one item by slug and sanitizes its description.
// Same graceful-degradation policy as ExternalSearch.
func (srv *catalogService) ExternalDetail(ctx context.Context, slug string) (*entity.ExternalGameDetail, error) {
	detail, err := srv.external.FetchBySlug(ctx, slug)
	if err != nil {
		srv.logger.Warn("External detail fetch failed", slog.String("slug", slug), slog.Any("error", err))

		return nil, nil
	}

	detail.Description = srv.sanitizer.Sanitize(detail.Description)

	return detail, nil
}
