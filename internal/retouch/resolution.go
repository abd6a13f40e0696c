package retouch

import "strings"

// Resolution tiers accepted by the upstream editing API.
const (
	Resolution1K = "1K"
	Resolution2K = "2K"
	Resolution4K = "4K"
)

// NormalizeResolution maps a free-form client hint onto one of the three
// supported tiers. Exact matches (after trimming and uppercasing) win;
// otherwise only the first character is inspected. Anything unrecognized
// falls back to 1K.
func NormalizeResolution(hint string) string {
	v := strings.ToUpper(strings.TrimSpace(hint))
	switch v {
	case Resolution1K, Resolution2K, Resolution4K:
		return v
	}
	switch {
	case strings.HasPrefix(v, "1"):
		return Resolution1K
	case strings.HasPrefix(v, "2"):
		return Resolution2K
	case strings.HasPrefix(v, "4"):
		return Resolution4K
	}
	return Resolution1K
}
