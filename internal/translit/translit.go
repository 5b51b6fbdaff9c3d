// Package translit converts logographic text into its phonetic Latin
// reading. The production implementation is backed by a pinyin library;
// tests substitute deterministic fakes so matching logic stays independent
// of the linguistic data.
package translit

// Transliterator converts text containing non-Latin script into a Latin
// reading. Implementations must be pure and safe for concurrent use.
type Transliterator interface {
	Transliterate(text string) string
}
