package motivation

import "strings"

const maxSentences = 2

// StripQuotes removes a single pair of wrapping double quotes.
func StripQuotes(text string) string {
	if !strings.HasPrefix(text, `"`) || !strings.HasSuffix(text, `"`) {
		return text
	}
	if len(text) < 2 {
		return ""
	}
	return text[1 : len(text)-1]
}

// ClampSentences keeps at most two period-delimited segments and makes sure the
// result ends with a period. Only literal '.' characters count as boundaries,
// so abbreviations and decimals are split too.
func ClampSentences(text string) string {
	segments := strings.Split(text, ".")
	if len(segments) > maxSentences {
		segments = segments[:maxSentences]
	}

	clamped := strings.TrimSpace(strings.Join(segments, "."))
	if !strings.HasSuffix(clamped, ".") {
		clamped += "."
	}
	return clamped
}

// Polish trims the raw completion, strips wrapping quotes and clamps it.
func Polish(raw string) string {
	return ClampSentences(StripQuotes(strings.TrimSpace(raw)))
}
