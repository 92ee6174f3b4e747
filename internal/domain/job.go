package domain

// JobRecord is one qualified listing pulled out of a search-result page.
// Built once per accepted container during a sweep, immutable after.
type JobRecord struct {
	Service            string `json:"service"`
	ServiceDisplayName string `json:"service_display_name"`
	Title              string `json:"title"`
	Company            string `json:"company"`
	City               string `json:"city"`
	State              string `json:"state"`
	Location           string `json:"location"`
	PostedDate         string `json:"posted_date"` // local clock, "2006-01-02 03:04 PM"
	PostedAt           string `json:"posted_at"`   // UTC, RFC3339
	FoundTime          string `json:"found_time"`  // raw relative-time token as seen in the page
	ScrapedAt          string `json:"scraped_at"`  // UTC, RFC3339
	Fingerprint        string `json:"fingerprint"`
}
