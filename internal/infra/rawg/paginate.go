package rawg

import (
	"context"

	"gameswap/internal/domain/entity"
)

// maxPageFollows bounds how many continuation pages a single search may
// fetch after the first, regardless of how many "next" cursors the
// upstream keeps returning. Each follow is a full network round trip, so
// the bound doubles as a resource-exhaustion guard against enormous or
// misbehaving result sets.
const maxPageFollows = 10

// aggregate walks the cursor chain starting from the caller-supplied
// first page, merging per-page result lists in page order. It stops on a
// missing cursor, an empty page, or the follow bound. Any page failure
// aborts the whole aggregation; there is no partial-results-on-error
// guarantee.
func (c *Client) aggregate(ctx context.Context, firstPage *searchPage) ([]entity.ExternalSearchResult, error) {
	results := projectHits(firstPage.Results)
	next := firstPage.Next

	for follow := 0; follow < maxPageFollows && next != ""; follow++ {
		page, err := c.fetchSearchPage(ctx, next)
		if err != nil {
			return nil, err
		}

		if len(page.Results) == 0 {
			break
		}

		results = append(results, projectHits(page.Results)...)
		next = page.Next
	}

	return results, nil
}

// projectHits maps wire hits onto the minimal search projection,
// preserving intra-page order. Duplicates across pages are kept exactly
// as the upstream returned them.
func projectHits(hits []searchHit) []entity.ExternalSearchResult {
	results := make([]entity.ExternalSearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, entity.ExternalSearchResult{
			Slug: hit.Slug,
			Name: hit.Name,
		})
	}

	return results
}
