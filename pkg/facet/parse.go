package facet

import "strings"

// ParseCategories splits a raw category attribute into labels. "|" wins
// over "," when both are present; a string with neither delimiter is a
// single label. Labels are trimmed and empties dropped, so unparsable
// metadata yields nil and the item simply carries no category.
func ParseCategories(raw string) []string {
	var parts []string
	switch {
	case strings.ContainsRune(raw, '|'):
		parts = strings.Split(raw, "|")
	case strings.ContainsRune(raw, ','):
		parts = strings.Split(raw, ",")
	default:
		parts = []string{raw}
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
