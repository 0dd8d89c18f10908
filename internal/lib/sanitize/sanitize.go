package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// maxDecode bounds how many layers of entity encoding are peeled before the
// policy runs.
const maxDecode = 3

// only these are restored after the policy; &lt; and &gt; stay encoded
var plain = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

// Text strips every HTML tag from s. Entity-encoded markup is decoded first
// so it is stripped too, and plain text like "Tom & Jerry" is stored as typed.
func Text(s string) string {
	for i := 0; i < maxDecode; i++ {
		u := html.UnescapeString(s)
		if u == s {
			break
		}
		s = u
	}
	return strings.TrimSpace(plain.Replace(policy.Sanitize(s)))
}

// Ptr applies Text to an optional field.
func Ptr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}
