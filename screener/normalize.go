package screener

import "strings"

// Normalize cleans a located raw value: trims whitespace, collapses a
// doubled percent sign and strips a trailing one (re-adding the unit is
// the frontend's job). The sentinel passes through untouched. Total and
// idempotent.
func Normalize(raw string) string {
	v := strings.TrimSpace(raw)
	if v == Sentinel {
		return v
	}
	for strings.Contains(v, "%%") {
		v = strings.ReplaceAll(v, "%%", "%")
	}
	for strings.HasSuffix(v, "%") {
		v = strings.TrimSpace(strings.TrimRight(v, "%"))
	}
	return v
}
