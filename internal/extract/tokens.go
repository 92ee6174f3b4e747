package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// FallbackToken is assigned when a container has no embedded time token
// and the document pool has run dry.
const FallbackToken = "3 hours ago"

var tokenPattern = regexp.MustCompile(`(?i)\b(\d+)\s+(minutes?|hours?|days?)\s+ago\b`)

// TokenPool holds every relative-time mention found in a document, in
// document order, consumed front to back by a forward-only cursor.
//
// The positional pairing between the Nth mention and the Nth container is
// an assumption inherited from the layouts this ships with; nothing in the
// markup guarantees it. Containers that carry a token inside their own
// subtree bypass the pool entirely (see ContainerToken), which is the only
// structurally sound case.
//
// A pool is scoped to a single document. Build a fresh one per page.
type TokenPool struct {
	tokens []string
	cursor int
}

// ScanTokens builds the pool from the document's full text.
func ScanTokens(docText string) *TokenPool {
	return &TokenPool{tokens: tokenPattern.FindAllString(docText, -1)}
}

// Next consumes the next unassigned token, or the fallback once exhausted.
func (p *TokenPool) Next() string {
	if p.cursor >= len(p.tokens) {
		return FallbackToken
	}
	tok := p.tokens[p.cursor]
	p.cursor++
	return tok
}

// Remaining reports how many tokens are still unconsumed.
func (p *TokenPool) Remaining() int {
	return len(p.tokens) - p.cursor
}

// ContainerToken looks for a time token inside the container's own
// subtree. When found it is authoritative for that container and the
// document pool is left untouched.
func ContainerToken(container *goquery.Selection) (string, bool) {
	tok := tokenPattern.FindString(container.Text())
	return tok, tok != ""
}
