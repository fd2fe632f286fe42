package solver

import "strings"

const fenceMarker = "```"

// CleanCode strips a surrounding markdown code fence from generated text.
//
// The opening fence line is dropped through the first line break, which also
// removes any language tag sitting on it. When the opening fence has no
// following line break (single-line input) fence stripping is skipped
// entirely and only the trims apply; this quirk is intentional.
func CleanCode(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, fenceMarker) {
		if idx := strings.Index(cleaned, "\n"); idx != -1 {
			cleaned = cleaned[idx+1:]
			if strings.HasSuffix(cleaned, fenceMarker) {
				cleaned = cleaned[:len(cleaned)-len(fenceMarker)]
			}
		}
	}
	return strings.TrimSpace(cleaned)
}
