package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const fallback = "contenido"

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\s-]+`)
	spaces    = regexp.MustCompile(`\s+`)
	multiDash = regexp.MustCompile(`-+`)
)

// Make builds a URL-safe slug from a title.
// Example: "El Libro de Lila" -> "el-libro-de-lila", "Señal" -> "senal".
func Make(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	s := strings.ToLower(strings.TrimSpace(folded))
	s = nonSlug.ReplaceAllString(s, "")
	s = spaces.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return fallback
	}
	return s
}

// WithSuffix returns the n-th candidate for a taken slug ("lila" -> "lila-2").
func WithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
