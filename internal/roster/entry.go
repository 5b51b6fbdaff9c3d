package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Entry is one raw positional row from the directory service. Only the
// identifier (index 0) and display name (index 1) are interpreted; the
// trailing cells (contact, demographic) are not used here.
type Entry struct {
	ID   string
	Name string
}

// parseRow validates one roster row: it must be an array of at least two
// cells with usable values at index 0 (identifier) and index 1 (display
// name). Cell values arriving as numbers are stringified the same way the
// directory renders them.
func parseRow(raw json.RawMessage) (Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var row []any
	if err := dec.Decode(&row); err != nil {
		return Entry{}, fmt.Errorf("row is not an array: %w", err)
	}
	if len(row) < 2 {
		return Entry{}, fmt.Errorf("row has %d cells, want at least 2", len(row))
	}

	id, ok := cellText(row[0])
	if !ok {
		return Entry{}, errors.New("identifier cell is not a usable value")
	}
	name, ok := cellText(row[1])
	if !ok {
		return Entry{}, errors.New("display-name cell is not a usable value")
	}
	return Entry{ID: id, Name: name}, nil
}

// cellText converts a decoded JSON cell to its text form. Nulls and
// composite values have no usable text.
func cellText(cell any) (string, bool) {
	switch v := cell.(type) {
	case string:
		return strings.TrimSpace(v), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// Names extracts the display names from entries, de-duplicated while
// preserving discovery order.
func Names(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		names = append(names, e.Name)
	}
	return names
}
