package extract

import (
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/domain"
)

// Skip records one container that didn't make it into the batch.
type Skip struct {
	Index  int
	Reason string
}

// DocumentResult is everything a single page yields: the qualified,
// deduplicated batch plus the raw container count before any filtering.
type DocumentResult struct {
	Jobs       []domain.JobRecord
	TotalFound int
	Skipped    []Skip
}

// ProcessDocument runs one search-result page through the full pipeline:
// container cascade, field extraction, time-token assignment, validation
// and dedup. It never fails the document; a page that can't be parsed or
// matches no selector group yields an empty result. Per-container
// problems skip that container and move on.
func ProcessDocument(markup string, svc config.ServiceDescriptor, now time.Time) DocumentResult {
	var res DocumentResult

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		log.Printf("[%s] document parse failed: %v", svc.Name, err)
		return res
	}

	containers := FindContainers(doc)
	if len(containers) == 0 {
		return res
	}
	res.TotalFound = len(containers)

	// Token pool is scoped to this document; the cursor never carries
	// over between pages or services.
	pool := ScanTokens(doc.Text())

	var candidates []domain.JobRecord
	for i, c := range containers {
		rec, ok := buildRecord(c, svc, pool, now)
		if !ok {
			res.Skipped = append(res.Skipped, Skip{Index: i, Reason: "no_title"})
			continue
		}

		keep, why := IsQualified(rec, svc)
		if !keep {
			log.Printf("[%s] skipped (%s) title=%q loc=%q found=%q",
				svc.Name, why, rec.Title, rec.Location, rec.FoundTime)
			res.Skipped = append(res.Skipped, Skip{Index: i, Reason: why})
			continue
		}
		candidates = append(candidates, rec)
	}

	res.Jobs = DedupBatch(candidates)
	return res
}

// buildRecord extracts one container's fields and assigns its time token.
// ok=false means the container had nothing usable at all (no title text
// under any selector); partial records still get built and left for the
// validator to judge.
func buildRecord(c *goquery.Selection, svc config.ServiceDescriptor, pool *TokenPool, now time.Time) (domain.JobRecord, bool) {
	title, ok := ExtractField(c, FieldTitle)
	if !ok {
		return domain.JobRecord{}, false
	}
	company, _ := ExtractField(c, FieldCompany)
	location, _ := ExtractField(c, FieldLocation)
	city, state := SplitLocation(location)

	// Prefer a token sitting inside the container's own subtree; only
	// bare layouts fall back to positional assignment from the pool.
	tok, embedded := ContainerToken(c)
	if !embedded {
		tok = pool.Next()
	}
	when := Normalize(tok, now)

	return domain.JobRecord{
		Service:            svc.Name,
		ServiceDisplayName: svc.DisplayName,
		Title:              title,
		Company:            company,
		City:               city,
		State:              state,
		Location:           location,
		PostedDate:         when.Local,
		PostedAt:           when.ISO,
		FoundTime:          tok,
		ScrapedAt:          now.UTC().Format(time.RFC3339),
		Fingerprint:        Fingerprint(title, location, svc.Name),
	}, true
}
