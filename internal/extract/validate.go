package extract

import (
	"strings"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/domain"
)

// IsQualified applies the three gates a candidate record has to clear:
// structural completeness, recency, and the service's keyword allowlist.
// The reason names the first gate that failed, for skip logging.
func IsQualified(rec domain.JobRecord, svc config.ServiceDescriptor) (keep bool, reason string) {
	if !structurallyComplete(rec) {
		return false, "incomplete"
	}
	if !IsRecent(rec.FoundTime, svc.Window()) {
		return false, "stale"
	}
	if !matchesAllowlist(rec.Title, svc.ValidationWords) {
		return false, "no_keyword_match"
	}
	return true, ""
}

func structurallyComplete(rec domain.JobRecord) bool {
	title := rec.Title
	if len(title) <= 3 {
		return false
	}
	// "Jobs" and anything mentioning "Search" are navigation chrome that
	// the selector cascade sometimes picks up as a card.
	if title == "Jobs" || strings.Contains(title, "Search") {
		return false
	}
	return rec.Company != "" || rec.Location != ""
}

func matchesAllowlist(title string, words []string) bool {
	if len(words) == 0 {
		return true
	}
	low := strings.ToLower(title)
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if strings.Contains(low, w) {
			return true
		}
	}
	return false
}
