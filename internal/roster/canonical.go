package roster

import (
	"strings"
	"unicode"

	"github.com/xingou/family-health-mcp/internal/translit"
)

// Canonicalizer reduces a person name to the key used for identity
// matching. Names already written in ASCII are cleaned directly; names
// containing logographic script are transliterated to their Latin reading
// first.
type Canonicalizer struct {
	tr translit.Transliterator
}

func NewCanonicalizer(tr translit.Transliterator) *Canonicalizer {
	return &Canonicalizer{tr: tr}
}

// Canonicalize returns the matching key for name: lowercase ASCII letters
// and digits only. An empty result means the name has no canonical form;
// callers must treat it as a non-match, never as a wildcard.
func (c *Canonicalizer) Canonicalize(name string) string {
	if name == "" {
		return ""
	}
	if isASCII(name) {
		return stripToAlnum(name)
	}
	return stripToAlnum(c.tr.Transliterate(name))
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// stripToAlnum trims, lowercases, and drops every rune outside [a-z0-9].
func stripToAlnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
