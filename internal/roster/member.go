// Package roster resolves caller-supplied person names to registered
// family members. It fetches the household roster from the directory
// service, reduces names to canonical matching keys, and performs the
// exact-key identity match that gates every downstream health query.
package roster

// Member is one family member resolved from the directory roster.
type Member struct {
	// ID is the opaque, directory-issued identifier, never empty.
	ID string
	// DisplayName is the name in its original script, never empty.
	DisplayName string
	// CanonicalKey is the normalized matching key for DisplayName,
	// containing only lowercase ASCII letters and digits.
	CanonicalKey string
}
