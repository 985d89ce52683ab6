package entity

// ExternalSearchResult is the minimal projection of a third-party search
// hit: enough for user-facing disambiguation before a detail fetch.
type ExternalSearchResult struct {
	Slug string // Unique upstream identifier, usable with a detail fetch.
	Name string // Display name as returned by the metadata service.
}

// ExternalGameDetail is the normalized projection of a third-party
// per-item response. All five fields are populated, or normalization
// fails; partial data is never returned silently.
type ExternalGameDetail struct {
	Title       string
	Publisher   string // First entry of the upstream publishers list.
	Released    string
	Description string
	Image       string
}
