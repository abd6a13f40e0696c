package retouch

import "strings"

// DefaultStyleID is the background style used when the client does not
// supply a recognizable one.
const DefaultStyleID = "studioSoft"

// backgroundPrompts maps client style ids to fixed editing instructions.
// The table is a content asset: loaded once, never mutated at runtime.
var backgroundPrompts = map[string]string{
	"studioSoft": "Replace the background with a soft, light-gray professional photo studio backdrop " +
		"with gentle gradient lighting and a subtle vignette. Keep the person exactly as they are: " +
		"same pose, face, hair, clothing, and proportions. Blend the subject's edges naturally so " +
		"the result looks like it was shot in the studio.",
	"taekwondo": "Replace the background with a bright, modern taekwondo dojang: pale wooden training " +
		"floor, padded walls, and flags hanging on the far wall, softly out of focus. Do not alter " +
		"the person in any way — preserve pose, face, uniform, and belt exactly. Match the lighting " +
		"on the subject to the new scene so the composite looks natural.",
	"holiday": "Replace the background with a warm, festive holiday scene: softly blurred string lights, " +
		"a decorated tree, and cozy golden tones in the distance. The person must remain untouched — " +
		"identical pose, face, and clothing. Blend edges cleanly and keep the subject in sharp focus " +
		"against the bokeh background.",
	"cleanMono": "Replace the background with a seamless plain white backdrop with a faint soft shadow " +
		"beneath the subject, in the style of e-commerce and ID photography. Preserve the person " +
		"completely: no changes to pose, face, skin, or clothing. Edges must be crisp with no halo " +
		"artifacts.",
}

// ResolvePrompt picks the editing instruction for a request. A non-empty
// client override always wins, then the table entry for the style id, then
// the default. Unknown style ids fall back silently so a stale client can
// never block a user.
func ResolvePrompt(override, styleID string) string {
	if p := strings.TrimSpace(override); p != "" {
		return p
	}
	if p, ok := backgroundPrompts[strings.TrimSpace(styleID)]; ok {
		return p
	}
	return backgroundPrompts[DefaultStyleID]
}

// PromptForStyle exposes the raw table entry for a style id, with the same
// silent fallback as ResolvePrompt.
func PromptForStyle(styleID string) string {
	return ResolvePrompt("", styleID)
}

// Styles returns the known style ids. Order is not specified.
func Styles() []string {
	out := make([]string, 0, len(backgroundPrompts))
	for id := range backgroundPrompts {
		out = append(out, id)
	}
	return out
}
