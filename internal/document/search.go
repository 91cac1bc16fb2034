package document

import (
	"strings"
	"time"
)

// SearchRequest filters documents. Criteria are AND-combined; a nil or empty
// criterion is not applied. Within a list criterion any single entry matching
// is enough.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}

// IsEmpty reports whether no criterion is populated.
func (r SearchRequest) IsEmpty() bool {
	return len(r.TitlePrefixes) == 0 &&
		len(r.ContainsContents) == 0 &&
		len(r.AuthorIDs) == 0 &&
		r.CreatedFrom == nil &&
		r.CreatedTo == nil
}

// Matches evaluates every populated criterion against d. Matching is
// case-sensitive and both time bounds are inclusive.
func (r SearchRequest) Matches(d Document) bool {
	if len(r.TitlePrefixes) > 0 && !anyMatch(r.TitlePrefixes, d.Title, strings.HasPrefix) {
		return false
	}
	if len(r.ContainsContents) > 0 && !anyMatch(r.ContainsContents, d.Content, strings.Contains) {
		return false
	}
	if len(r.AuthorIDs) > 0 && !anyMatch(r.AuthorIDs, d.Author.ID, equals) {
		return false
	}
	if r.CreatedFrom != nil && d.Created.Before(*r.CreatedFrom) {
		return false
	}
	if r.CreatedTo != nil && d.Created.After(*r.CreatedTo) {
		return false
	}
	return true
}

func anyMatch(candidates []string, value string, match func(s, c string) bool) bool {
	for _, c := range candidates {
		if match(value, c) {
			return true
		}
	}
	return false
}

func equals(s, c string) bool { return s == c }
