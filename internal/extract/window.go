package extract

import (
	"strconv"
	"strings"
)

// IsRecent decides whether a relative-time token falls inside the
// freshness window. Minutes are always recent regardless of magnitude,
// hours compare against the threshold, anything else (days, unparseable)
// is stale.
func IsRecent(token string, thresholdHours int) bool {
	m := relTimeRegex.FindStringSubmatch(token)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}

	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "min"):
		return true
	case strings.HasPrefix(unit, "hour"):
		return n <= thresholdHours
	default:
		return false
	}
}
