package core

import "strings"

// Matcher reports whether a record matches value for one search category.
type Matcher func(r *Record, value string) bool

// Search categories handled by dedicated matchers. Any other field name is
// looked up with Record.Field.
const (
	SearchPhone  = "phone"
	SearchPhones = "phones"
	SearchNote   = "note"
	SearchTag    = "tag"
	SearchAll    = "all"
)

func defaultMatchers() map[string]Matcher {
	return map[string]Matcher{
		SearchPhone:  matchPhone,
		SearchPhones: matchPhone,
		SearchNote:   matchNote,
		SearchTag:    matchTag,
	}
}

// matchPhone is case-sensitive: phones carry no letters worth folding.
func matchPhone(r *Record, value string) bool {
	for _, p := range r.Phones {
		if p.Value() == value || strings.Contains(p.String(), value) {
			return true
		}
	}
	return false
}

func matchNote(r *Record, value string) bool {
	for _, n := range r.Notes {
		if equalOrContainsFold(n.String(), value) {
			return true
		}
	}
	return false
}

func matchTag(r *Record, value string) bool {
	needle := strings.ToLower(value)
	for _, n := range r.Notes {
		for _, t := range n.Tags {
			if strings.Contains(strings.ToLower(t), needle) {
				return true
			}
		}
	}
	return false
}

// matchAll applies the attribute rule to every field of the record.
func matchAll(r *Record, value string) bool {
	for _, v := range r.Fields() {
		if equalOrContainsFold(v, value) {
			return true
		}
	}
	return false
}

// fieldMatcher matches the named attribute when the record has it and falls
// back to matchAll for the "all" category.
func fieldMatcher(field string) Matcher {
	return func(r *Record, value string) bool {
		if v, ok := r.Field(field); ok {
			return equalOrContainsFold(v, value)
		}
		if field == SearchAll {
			return matchAll(r, value)
		}
		return false
	}
}

func equalOrContainsFold(s, value string) bool {
	return s == value || strings.Contains(strings.ToLower(s), strings.ToLower(value))
}
