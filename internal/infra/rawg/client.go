// Package rawg implements the external game-metadata client against a
// RAWG-style HTTP JSON API.
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"gameswap/config"
	"gameswap/internal/domain/entity"
	domainerrors "gameswap/internal/domain/errors"
	"gameswap/internal/domain/service"
)

// searchPage is the wire shape of one page of title-search results.
type searchPage struct {
	Results []searchHit `json:"results"`
	Next    string      `json:"next"`
}

type searchHit struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// detailPayload is the wire shape of a per-item response.
type detailPayload struct {
	Name            string      `json:"name"`
	Publishers      []publisher `json:"publishers"`
	Released        string      `json:"released"`
	BackgroundImage string      `json:"background_image"`
	Description     string      `json:"description"`
}

type publisher struct {
	Name string `json:"name"`
}

// Client talks to the external metadata service. The HTTP client is owned
// by the struct so tests can swap in a server of their own via config.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds the metadata client from configuration.
func NewClient(cfg *config.Config) service.ExternalCatalog {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Rawg.Timeout},
		baseURL:    cfg.Rawg.BaseURL,
		apiKey:     cfg.Rawg.APIKey,
	}
}

// SearchByTitle runs an exact-semantics title search and aggregates every
// continuation page. Upstream order and duplicates are preserved.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]entity.ExternalSearchResult, error) {
	searchURL := fmt.Sprintf("%s/games?search=%s&search_exact=true&key=%s",
		c.baseURL, url.QueryEscape(title), url.QueryEscape(c.apiKey))

	firstPage, err := c.fetchSearchPage(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	return c.aggregate(ctx, firstPage)
}

// FetchBySlug fetches one item by its unique slug and normalizes it into
// the five-field detail projection.
func (c *Client) FetchBySlug(ctx context.Context, slug string) (*entity.ExternalGameDetail, error) {
	detailURL := fmt.Sprintf("%s/games/%s?key=%s",
		c.baseURL, url.PathEscape(slug), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build detail request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrExternalService, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(domainerrors.ErrExternalService, "detail fetch returned status %d", resp.StatusCode)
	}

	var payload detailPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(domainerrors.ErrExternalService, "detail response is not valid JSON")
	}

	return normalizeDetail(&payload)
}

// normalizeDetail projects the wire payload into ExternalGameDetail.
// Every field must be populated; missing data fails with the defined
// normalization error instead of returning partial data silently.
func normalizeDetail(payload *detailPayload) (*entity.ExternalGameDetail, error) {
	if len(payload.Publishers) == 0 || payload.Publishers[0].Name == "" {
		return nil, errors.Wrap(domainerrors.ErrNormalization, "publishers list is empty")
	}

	detail := &entity.ExternalGameDetail{
		Title:       payload.Name,
		Publisher:   payload.Publishers[0].Name,
		Released:    payload.Released,
		Description: payload.Description,
		Image:       payload.BackgroundImage,
	}

	switch {
	case detail.Title == "":
		return nil, errors.Wrap(domainerrors.ErrNormalization, "name is missing")
	case detail.Released == "":
		return nil, errors.Wrap(domainerrors.ErrNormalization, "release date is missing")
	case detail.Description == "":
		return nil, errors.Wrap(domainerrors.ErrNormalization, "description is missing")
	case detail.Image == "":
		return nil, errors.Wrap(domainerrors.ErrNormalization, "background image is missing")
	}

	return detail, nil
}

// fetchSearchPage performs one page fetch of the search cursor chain.
func (c *Client) fetchSearchPage(ctx context.Context, pageURL string) (*searchPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build search request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrExternalService, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(domainerrors.ErrExternalService, "search fetch returned status %d", resp.StatusCode)
	}

	var page searchPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.Wrap(domainerrors.ErrExternalService, "search response is not valid JSON")
	}

	return &page, nil
}
