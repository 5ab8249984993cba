package utils

import (
	"github.com/itchan-dev/forumapi/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips every HTML tag from s and leaves the remaining text
// HTML-escaped, so the result is safe to render as markup. Entities are never
// decoded back into tags.
func SanitizeText(s string) string {
	return strictPolicy.Sanitize(s)
}

// SanitizePayload sanitizes the string values of keys in place. Values of any
// other type are left for entity validation to reject.
// Thread, comment and reply content must not go through here: it is stored as received.
func SanitizePayload(p domain.Payload, keys ...string) domain.Payload {
	for _, key := range keys {
		if s, ok := p[key].(string); ok {
			p[key] = SanitizeText(s)
		}
	}
	return p
}
