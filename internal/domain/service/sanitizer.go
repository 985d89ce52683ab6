package service

// TextSanitizer strips markup from free-text descriptions before display.
// The interface isolates the (deliberately lossy) pattern-based
// implementation so a stricter one can be substituted without touching
// callers.
type TextSanitizer interface {
	// Sanitize removes tag-like substrings and decodes the numeric
	// apostrophe entity. Pure and idempotent; text with neither returns
	// unchanged.
	Sanitize(input string) string
}
