package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tag stripped", "<b>Lila</b>", "Lila"},
		{"script dropped", "<script>alert(1)</script>ok", "ok"},
		{"ampersand kept", "Tom & Jerry", "Tom & Jerry"},
		{"quotes kept", `Lila's "libro"`, `Lila's "libro"`},
		{"trimmed", "  Aventura / Fantasía ", "Aventura / Fantasía"},
		{"encoded ampersand decoded once", "Tom &amp; Jerry", "Tom & Jerry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestText_EncodedMarkupIsNotRevived(t *testing.T) {
	for _, in := range []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;",
		"&#60;img src=x onerror=alert(1)&#62;",
		"&amp;amp;amp;lt;script&amp;amp;amp;gt;",
	} {
		out := Text(in)
		assert.NotContains(t, out, "<script", in)
		assert.NotContains(t, out, "<img", in)
	}
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Ptr(nil))

	in := "<i>Subtítulo</i>"
	out := Ptr(&in)
	if assert.NotNil(t, out) {
		assert.Equal(t, "Subtítulo", *out)
	}
}
