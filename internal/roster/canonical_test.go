package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeTransliterator returns fixed readings so canonicalization can be
// tested without real linguistic data.
type fakeTransliterator struct {
	table map[string]string
}

func (f fakeTransliterator) Transliterate(text string) string {
	return f.table[text]
}

func newTestCanonicalizer() *Canonicalizer {
	return NewCanonicalizer(fakeTransliterator{table: map[string]string{
		"刘成良":    "liuchengliang",
		"唐晓涵":    "tangxiaohan",
		"王Bob":   "wangBob",
		"！＠＃":    "",
		"刘 成良":   "liu chengliang",
		"Liu刘成良": "Liuliuchengliang",
	}})
}

func TestCanonicalizeASCII(t *testing.T) {
	c := newTestCanonicalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "liuchengliang", "liuchengliang"},
		{"mixed case and spaces", "  Tang Xiaohan ", "tangxiaohan"},
		{"punctuation stripped", "o'brien-smith", "obriensmith"},
		{"digits kept", "user42", "user42"},
		{"punctuation only", "-_.!?", ""},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Canonicalize(tt.in))
		})
	}
}

func TestCanonicalizeIdempotentOnASCII(t *testing.T) {
	c := newTestCanonicalizer()

	for _, in := range []string{"Tang Xiaohan", "liuchengliang", "o'brien", "A1 B2", ""} {
		once := c.Canonicalize(in)
		assert.Equal(t, once, c.Canonicalize(once), "input %q", in)
	}
}

func TestCanonicalizeTransliterates(t *testing.T) {
	c := newTestCanonicalizer()

	assert.Equal(t, "liuchengliang", c.Canonicalize("刘成良"))
	assert.Equal(t, "wangbob", c.Canonicalize("王Bob"))
	// Readings with separators are cleaned like any other Latin text.
	assert.Equal(t, "liuchengliang", c.Canonicalize("刘 成良"))
}

func TestCanonicalizeUncanonicalizable(t *testing.T) {
	c := newTestCanonicalizer()

	// Non-ASCII input whose transliteration is empty stays empty.
	assert.Equal(t, "", c.Canonicalize("！＠＃"))
}
