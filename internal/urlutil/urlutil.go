package urlutil

import (
	"net/url"
	"regexp"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)

// ExtractURLs returns the parseable http(s) URLs found in free-form
// text, in order of appearance. Used by the chat route layer to spot
// storefront links pasted into a conversation.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, err := url.Parse(m); err == nil {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
