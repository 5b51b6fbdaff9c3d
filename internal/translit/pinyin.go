package translit

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Pinyin transliterates Han characters to their lazy (tone-free) pinyin
// reading, concatenated without separators. Runes outside the Han range
// pass through unchanged, so mixed-script names keep their Latin parts.
type Pinyin struct {
	args pinyin.Args
}

func NewPinyin() *Pinyin {
	args := pinyin.NewArgs()
	args.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return &Pinyin{args: args}
}

func (p *Pinyin) Transliterate(text string) string {
	return strings.Join(pinyin.LazyPinyin(text, p.args), "")
}
