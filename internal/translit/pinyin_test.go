package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinyinTransliterate(t *testing.T) {
	p := NewPinyin()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"han name", "刘成良", "liuchengliang"},
		{"han name 2", "唐晓涵", "tangxiaohan"},
		{"latin passes through", "Bob", "Bob"},
		{"mixed script keeps latin runes", "王Bob", "wangBob"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Transliterate(tt.in))
		})
	}
}
