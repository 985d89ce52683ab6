// Package text implements the markup sanitizer applied to free-text
// descriptions before display.
package text

import (
	"regexp"
	"strings"

	"gameswap/internal/domain/service"
)

// tagPattern matches tag-like substrings non-greedily. There is no
// nested-tag awareness: a literal '<' in content that happens to precede
// a '>' is stripped too. Accepted lossy behavior.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// apostropheEntity is the only entity that gets decoded.
const apostropheEntity = "&#39;"

type sanitizer struct{}

// NewSanitizer returns the pattern-based TextSanitizer implementation.
func NewSanitizer() service.TextSanitizer {
	return sanitizer{}
}

// Sanitize strips tag-like substrings and decodes the numeric apostrophe
// entity. Input without either comes back unchanged.
func (sanitizer) Sanitize(input string) string {
	stripped := tagPattern.ReplaceAllString(input, "")

	return strings.ReplaceAll(stripped, apostropheEntity, "'")
}
