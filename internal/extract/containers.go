package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FieldKind selects which per-field selector list to run.
type FieldKind int

const (
	FieldTitle FieldKind = iota
	FieldCompany
	FieldLocation
)

// containerGroups are tried in priority order; the first group that
// matches at least one element wins outright, no merging across groups.
var containerGroups = []struct {
	name string
	sel  string
}{
	{"card", "div.job_seen_beacon"},
	{"result-card", "li.result-card, div.result-card"},
	{"data-card", "[data-testid='job-card'], [data-entity-urn]"},
	{"generic-result", "div.result, li.result"},
	{"article", "article"},
}

var fieldSelectors = map[FieldKind][]string{
	FieldTitle: {
		"h2.jobTitle span[title]",
		"h2.jobTitle a",
		"[data-testid='job-title']",
		"h3.base-search-card__title",
		"h2 a",
		"h3 a",
		"h2",
		"h3",
	},
	FieldCompany: {
		"span.companyName",
		"[data-testid='company-name']",
		"h4.base-search-card__subtitle",
		"span.company",
		".company",
	},
	FieldLocation: {
		"div.companyLocation",
		"[data-testid='text-location']",
		"span.job-search-card__location",
		".location",
		".job-location",
	},
}

// FindContainers returns the candidate listing elements in document order.
// An empty result means "no listings found", never an error.
func FindContainers(doc *goquery.Document) []*goquery.Selection {
	for _, g := range containerGroups {
		matches := doc.Find(g.sel)
		if matches.Length() == 0 {
			continue
		}
		out := make([]*goquery.Selection, 0, matches.Length())
		matches.Each(func(_ int, s *goquery.Selection) {
			out = append(out, s)
		})
		return out
	}
	return nil
}

// ExtractField runs the field's selector list against one container and
// returns the first non-empty trimmed text. ok=false means the field is
// absent, which is a valid outcome.
func ExtractField(container *goquery.Selection, kind FieldKind) (string, bool) {
	for _, sel := range fieldSelectors[kind] {
		if t := CleanText(container.Find(sel).First().Text()); t != "" {
			return t, true
		}
	}
	return "", false
}

// CleanText collapses whitespace and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// locationSeparators mark a trailing addendum ("Austin, TX • Remote");
// everything after the first one is dropped.
var locationSeparators = []string{"•", "·", "|"}

// SplitLocation breaks a raw location string into city and state.
// First comma segment is the city, second (if present) the state.
func SplitLocation(raw string) (city, state string) {
	loc := CleanText(raw)
	for _, sep := range locationSeparators {
		if i := strings.Index(loc, sep); i >= 0 {
			loc = loc[:i]
		}
	}
	loc = CleanText(loc)
	if loc == "" {
		return "", ""
	}

	parts := strings.Split(loc, ",")
	city = CleanText(parts[0])
	if len(parts) > 1 {
		state = CleanText(parts[1])
	}
	return city, state
}
