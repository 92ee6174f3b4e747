package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsift-engine/internal/config"
)

var testSvc = config.ServiceDescriptor{
	Name:        "indeed",
	DisplayName: "Indeed",
	Table:       "indeed_jobs",
	Enabled:     true,
}

func testNow() time.Time {
	return time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
}

// Three containers, two time mentions outside any container: positional
// assignment pairs the first two, the third gets the fixed fallback.
func TestProcessDocument_PositionalTokensWithFallback(t *testing.T) {
	html := `
<div id="feed-meta">First posted 2 hours ago, second 30 minutes ago.</div>
<article><h2>Forklift Operator</h2><span class="company">Acme</span><div class="companyLocation">Austin, TX</div></article>
<article><h2>Warehouse Associate</h2><span class="company">Globex</span><div class="companyLocation">Round Rock, TX</div></article>
<article><h2>Order Picker</h2><span class="company">Initech</span><div class="companyLocation">Pflugerville, TX</div></article>`

	res := ProcessDocument(html, testSvc, testNow())

	require.Equal(t, 3, res.TotalFound)
	require.Len(t, res.Jobs, 3)

	assert.Equal(t, "2 hours ago", res.Jobs[0].FoundTime)
	assert.Equal(t, "30 minutes ago", res.Jobs[1].FoundTime)
	assert.Equal(t, FallbackToken, res.Jobs[2].FoundTime)
}

func TestProcessDocument_EmbeddedTokenSkipsPool(t *testing.T) {
	// The first card carries its own (stale) token; the pool token in the
	// sidebar must still go to the second card, not the first.
	html := `
<div id="feed-meta">1 hour ago</div>
<article><h2>Forklift Operator</h2><span class="company">Acme</span><span>6 hours ago</span></article>
<article><h2>Warehouse Associate</h2><span class="company">Globex</span></article>`

	res := ProcessDocument(html, testSvc, testNow())

	require.Equal(t, 2, res.TotalFound)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Warehouse Associate", res.Jobs[0].Title)
	assert.Equal(t, "1 hour ago", res.Jobs[0].FoundTime)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "stale", res.Skipped[0].Reason)
}

func TestProcessDocument_NoContainers(t *testing.T) {
	res := ProcessDocument("<html><body><p>nothing here</p></body></html>", testSvc, testNow())

	assert.Zero(t, res.TotalFound)
	assert.Empty(t, res.Jobs)
}

func TestProcessDocument_RecordShape(t *testing.T) {
	html := `
<article>
  <h2>Forklift Operator</h2>
  <span class="company">Acme Logistics</span>
  <div class="companyLocation">Austin, TX • Remote</div>
  <span>45 minutes ago</span>
</article>`

	res := ProcessDocument(html, testSvc, testNow())
	require.Len(t, res.Jobs, 1)
	j := res.Jobs[0]

	assert.Equal(t, "indeed", j.Service)
	assert.Equal(t, "Indeed", j.ServiceDisplayName)
	assert.Equal(t, "Forklift Operator", j.Title)
	assert.Equal(t, "Acme Logistics", j.Company)
	assert.Equal(t, "Austin", j.City)
	assert.Equal(t, "TX", j.State)
	assert.Equal(t, "Austin, TX • Remote", j.Location)
	assert.Equal(t, "45 minutes ago", j.FoundTime)
	assert.Equal(t, "2026-08-20 02:45 PM", j.PostedDate)
	assert.Equal(t, "2026-08-20T14:45:00Z", j.PostedAt)
	assert.Equal(t, "2026-08-20T15:30:00Z", j.ScrapedAt)
	assert.Equal(t, Fingerprint(j.Title, j.Location, j.Service), j.Fingerprint)
}

func TestProcessDocument_DeduplicatesWithinBatch(t *testing.T) {
	card := `<article><h2>Forklift Operator</h2><span class="company">Acme</span><div class="companyLocation">Austin, TX</div><span>10 minutes ago</span></article>`
	html := card + card + card

	res := ProcessDocument(html, testSvc, testNow())

	assert.Equal(t, 3, res.TotalFound)
	assert.Len(t, res.Jobs, 1)
}

func TestProcessDocument_SkipsUntitledContainer(t *testing.T) {
	html := `
<article><img src="ad.png"/></article>
<article><h2>Order Picker</h2><span class="company">Initech</span><span>20 minutes ago</span></article>`

	res := ProcessDocument(html, testSvc, testNow())

	require.Equal(t, 2, res.TotalFound)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Order Picker", res.Jobs[0].Title)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "no_title", res.Skipped[0].Reason)
	assert.Equal(t, 0, res.Skipped[0].Index)
}

func TestProcessDocument_TotalFoundCountsBeforeValidation(t *testing.T) {
	html := `
<article><h2>Jobs</h2><span class="company">Acme</span><span>5 minutes ago</span></article>
<article><h2>Order Picker</h2><span class="company">Initech</span><span>20 minutes ago</span></article>`

	res := ProcessDocument(html, testSvc, testNow())

	assert.Equal(t, 2, res.TotalFound)
	assert.Len(t, res.Jobs, 1)
}
