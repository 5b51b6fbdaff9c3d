package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(newTestCanonicalizer())
}

func TestResolveMatchesPinyinQuery(t *testing.T) {
	r := newTestResolver()
	entries := []Entry{
		{ID: "23", Name: "刘成良"},
		{ID: "9", Name: "Tang Xiaohan"},
	}

	m, ok := r.Resolve("liuchengliang", entries)
	require.True(t, ok)
	assert.Equal(t, "23", m.ID)
	assert.Equal(t, "刘成良", m.DisplayName)
	assert.Equal(t, "liuchengliang", m.CanonicalKey)
}

func TestResolveUnknownName(t *testing.T) {
	r := newTestResolver()
	entries := []Entry{
		{ID: "23", Name: "刘成良"},
		{ID: "9", Name: "Tang Xiaohan"},
	}

	_, ok := r.Resolve("bob", entries)
	assert.False(t, ok)
}

func TestResolveEmptyQuery(t *testing.T) {
	r := newTestResolver()
	entries := []Entry{{ID: "23", Name: "刘成良"}}

	_, ok := r.Resolve("", entries)
	assert.False(t, ok)

	// An uncanonicalizable query must never act as a wildcard.
	_, ok = r.Resolve("!!!", entries)
	assert.False(t, ok)
}

func TestMembersDropsInvalidEntries(t *testing.T) {
	r := newTestResolver()
	entries := []Entry{
		{ID: "", Name: "刘成良"},
		{ID: "5", Name: ""},
		{ID: "6", Name: "！＠＃"}, // canonicalizes to empty
		{ID: "9", Name: "Tang Xiaohan"},
	}

	members := r.Members(entries)
	require.Len(t, members, 1)
	assert.Equal(t, "9", members[0].ID)
}

func TestResolveCollisionTakesFirstInRosterOrder(t *testing.T) {
	r := newTestResolver()
	// "刘成良" and "Liu Cheng Liang" share the canonical key.
	entries := []Entry{
		{ID: "23", Name: "刘成良"},
		{ID: "77", Name: "Liu Cheng Liang"},
	}

	for range 5 {
		m, ok := r.Resolve("liuchengliang", entries)
		require.True(t, ok)
		assert.Equal(t, "23", m.ID)
	}

	// Reversing the roster reverses the winner.
	reversed := []Entry{entries[1], entries[0]}
	m, ok := r.Resolve("liuchengliang", reversed)
	require.True(t, ok)
	assert.Equal(t, "77", m.ID)
}
