package directory

import (
	"sort"
	"strings"

	"github.com/brightwood-pta/directorybackend/models"
)

// SearchResults holds the two result lists of one search pass. Both lists are
// always non-nil; an empty query and a query with no matches both yield empty
// lists.
type SearchResults struct {
	Students []models.Student `json:"students"`
	Parents  []models.Parent  `json:"parents"`
}

// Search runs a single full pass over the student list for the given
// free-text query and returns up to limit students and up to limit resolved
// parent identities, each deduplicated by id and ordered by last name then
// first name. The pass is a pure recompute; re-running it is equivalent to
// rebuilding from empty.
//
// A student matches when the lower-cased query is a prefix of the first name,
// last name, nickname or "first last"; or, when the query contains a space,
// the part before the first space equals the first name exactly and the
// remainder is a prefix of the last name. The same rules run independently
// against each of the four guardian slots to produce parent matches.
func (idx *Index) Search(query string, limit int) SearchResults {
	results := SearchResults{
		Students: []models.Student{},
		Parents:  []models.Parent{},
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return results
	}

	studentIDs := make(map[string]bool)
	parentsByID := make(map[string]int)
	parents := make([]models.Parent, 0)

	for i := range idx.students {
		s := &idx.students[i]

		if nameMatches(term, s.FirstName, s.LastName, s.Nickname) && !studentIDs[s.ID] {
			studentIDs[s.ID] = true
			results.Students = append(results.Students, *s)
		}

		for _, g := range s.Guardians() {
			if !g.Present() || !nameMatches(term, *g.FirstName, *g.LastName, nil) {
				continue
			}
			pid := models.ParentID(*g.FirstName, *g.LastName)
			pos, ok := parentsByID[pid]
			if !ok {
				pos = len(parents)
				parentsByID[pid] = pos
				parents = append(parents, models.Parent{
					ID:          pid,
					FirstName:   *g.FirstName,
					LastName:    *g.LastName,
					Email:       g.Email,
					Phone:       g.Phone,
					SecondPhone: g.SecondPhone,
					Students:    []models.Student{},
				})
			}
			if !parents[pos].HasStudent(s.ID) {
				parents[pos].Students = append(parents[pos].Students, *s)
			}
		}
	}

	sortStudentsByName(results.Students)

	c := newCollator()
	sort.SliceStable(parents, func(i, j int) bool {
		if cmp := c.CompareString(parents[i].LastName, parents[j].LastName); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(parents[i].FirstName, parents[j].FirstName) < 0
	})

	if len(results.Students) > limit {
		results.Students = results.Students[:limit]
	}
	if len(parents) > limit {
		parents = parents[:limit]
	}
	results.Parents = parents

	return results
}

// nameMatches applies the two search rules to one name. The term must already
// be lower-cased and trimmed.
func nameMatches(term, firstName, lastName string, nickname *string) bool {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)

	if strings.HasPrefix(first, term) || strings.HasPrefix(last, term) {
		return true
	}
	if nickname != nil && strings.HasPrefix(strings.ToLower(*nickname), term) {
		return true
	}
	if strings.HasPrefix(first+" "+last, term) {
		return true
	}

	// "john sm" matches John Smith: exact first name, then last-name prefix
	if i := strings.Index(term, " "); i >= 0 {
		if first == term[:i] && strings.HasPrefix(last, term[i+1:]) {
			return true
		}
	}

	return false
}
