package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// localLayout renders hour 0 and hour 12 both as "12" (03 verb is
// 12-hour), which is what the round-trip property needs.
const localLayout = "2006-01-02 03:04 PM"

var relTimeRegex = regexp.MustCompile(`(?i)\b(\d+)\s+(min(?:ute)?s?|hours?|days?)\b`)

// NormalizedTime is the absolute rendering of one relative-time token.
type NormalizedTime struct {
	Local string    // reference zone, localLayout
	ISO   string    // UTC, RFC3339
	At    time.Time // the computed instant
}

// Normalize converts a token like "2 hours ago" into an absolute time
// relative to now. Unparseable tokens normalize to now itself.
func Normalize(token string, now time.Time) NormalizedTime {
	at := now

	if m := relTimeRegex.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			unit := strings.ToLower(m[2])
			switch {
			case strings.HasPrefix(unit, "min"):
				at = now.Add(-time.Duration(n) * time.Minute)
			case strings.HasPrefix(unit, "hour"):
				at = now.Add(-time.Duration(n) * time.Hour)
			case strings.HasPrefix(unit, "day"):
				at = now.AddDate(0, 0, -n)
			}
		}
	}

	return NormalizedTime{
		Local: at.Format(localLayout),
		ISO:   at.UTC().Format(time.RFC3339),
		At:    at,
	}
}
