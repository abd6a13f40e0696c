package falai

import "strings"

// The result URL has been observed under several keys depending on the
// upstream model version. Extractors are tried in priority order; the
// first non-empty string wins.
type extractor func(doc map[string]any) string

var urlExtractors = []extractor{
	stringField("image_url"),
	stringField("url"),
	firstListURL("images"),
	firstListURL("output"),
}

// ExtractImageURL searches a decoded upstream response for the edited
// image URL. Returns "" when no known location holds one.
func ExtractImageURL(doc map[string]any) string {
	for _, extract := range urlExtractors {
		if u := extract(doc); u != "" {
			return u
		}
	}
	return ""
}

func stringField(key string) extractor {
	return func(doc map[string]any) string {
		s, _ := doc[key].(string)
		return strings.TrimSpace(s)
	}
}

func firstListURL(key string) extractor {
	return func(doc map[string]any) string {
		list, _ := doc[key].([]any)
		if len(list) == 0 {
			return ""
		}
		entry, _ := list[0].(map[string]any)
		s, _ := entry["url"].(string)
		return strings.TrimSpace(s)
	}
}
