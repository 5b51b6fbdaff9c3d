package roster

// Resolver matches a query name against the roster by exact canonical-key
// equality. No fuzzy or partial matching is performed.
type Resolver struct {
	canon *Canonicalizer
}

func NewResolver(canon *Canonicalizer) *Resolver {
	return &Resolver{canon: canon}
}

// Members converts raw roster entries into member records. Entries with an
// empty identifier or display name, or whose name has no canonical form,
// are dropped silently.
func (r *Resolver) Members(entries []Entry) []Member {
	members := make([]Member, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" || e.Name == "" {
			continue
		}
		key := r.canon.Canonicalize(e.Name)
		if key == "" {
			continue
		}
		members = append(members, Member{ID: e.ID, DisplayName: e.Name, CanonicalKey: key})
	}
	return members
}

// Resolve matches query against the raw roster. It reports false when the
// query has no canonical form or no member carries the same key.
func (r *Resolver) Resolve(query string, entries []Entry) (Member, bool) {
	return r.Match(query, r.Members(entries))
}

// Match looks the canonicalized query up among already-built members.
// When several members share a canonical key, the one appearing first in
// roster order wins; this is documented policy, not an error.
func (r *Resolver) Match(query string, members []Member) (Member, bool) {
	key := r.canon.Canonicalize(query)
	if key == "" {
		return Member{}, false
	}

	index := make(map[string][]Member, len(members))
	for _, m := range members {
		index[m.CanonicalKey] = append(index[m.CanonicalKey], m)
	}

	candidates := index[key]
	if len(candidates) == 0 {
		return Member{}, false
	}
	return candidates[0], true
}
