package certificates

import "strings"

// Filter is a pair of normalized substring predicates. An empty field always
// matches.
type Filter struct {
	Name string
	Type string
}

// NewFilter trims and lowercases raw user input.
func NewFilter(name, typ string) Filter {
	return Filter{
		Name: strings.ToLower(strings.TrimSpace(name)),
		Type: strings.ToLower(strings.TrimSpace(typ)),
	}
}

// IsEmpty reports whether neither predicate is set.
func (f Filter) IsEmpty() bool {
	return f.Name == "" && f.Type == ""
}

// Match reports whether r satisfies both predicates. A record without a
// certification type never matches a non-empty type predicate.
func (f Filter) Match(r Record) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(r.Name), f.Name) {
		return false
	}
	if f.Type != "" {
		if r.Type == nil || !strings.Contains(strings.ToLower(r.Type.Name), f.Type) {
			return false
		}
	}
	return true
}

// Apply returns a new slice holding the matching records in input order.
// records is never modified.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
