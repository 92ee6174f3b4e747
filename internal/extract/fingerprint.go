package extract

import (
	"crypto/sha256"
	"encoding/hex"

	"jobsift-engine/internal/domain"
)

// Fingerprint derives the record's identity key from title, location and
// service. Deterministic and collision-resistant; the store keys its
// unique index on it.
func Fingerprint(title, location, service string) string {
	sum := sha256.Sum256([]byte(title + "|" + location + "|" + service))
	return hex.EncodeToString(sum[:])[:16]
}

// DedupBatch drops later records whose fingerprint was already seen,
// keeping first occurrences in document order. Doing this before the
// store call avoids racing the unique index with our own batch.
func DedupBatch(records []domain.JobRecord) []domain.JobRecord {
	if len(records) == 0 {
		return records
	}
	seen := make(map[string]bool, len(records))
	out := records[:0:0]
	for _, r := range records {
		if seen[r.Fingerprint] {
			continue
		}
		seen[r.Fingerprint] = true
		out = append(out, r)
	}
	return out
}
