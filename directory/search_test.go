package directory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwood-pta/directorybackend/models"
)

func searchIndex() *Index {
	alice := testStudent("student-1", "Alice", "Smith", "3")
	alice.Nickname = strPtr("Ally")
	alice = withGuardian(alice, "Mary", "Smith", "847-555-0101", "mary@example.com")

	ben := withGuardian(testStudent("student-2", "Ben", "Lee", "K"), "Chris", "Lee", "847-555-0202", "chris@example.com")

	adam := withGuardian(testStudent("student-3", "Adam", "Smith", "1"), "Mary", "Smith", "847-555-0101", "mary@example.com")

	return NewIndex([]models.Student{alice, ben, adam})
}

func TestSearchPrefixRules(t *testing.T) {
	idx := searchIndex()

	// first-name prefix
	results := idx.Search("ali", 10)
	require.Len(t, results.Students, 1)
	assert.Equal(t, "student-1", results.Students[0].ID)

	// last-name prefix matches both Smiths
	results = idx.Search("smi", 10)
	assert.Len(t, results.Students, 2)

	// nickname prefix
	results = idx.Search("all", 10)
	require.Len(t, results.Students, 1)
	assert.Equal(t, "student-1", results.Students[0].ID)

	// full-name prefix spans the space
	results = idx.Search("alice sm", 10)
	require.Len(t, results.Students, 1)

	// the space rule requires first name first; reversed order never matches
	results = idx.Search("smith ali", 10)
	assert.Empty(t, results.Students)
}

func TestSearchSpaceRule(t *testing.T) {
	idx := searchIndex()

	// exact first name, then last-name prefix after the space
	results := idx.Search("ben l", 10)
	require.Len(t, results.Students, 1)
	assert.Equal(t, "student-2", results.Students[0].ID)

	// prefix-only first name does not satisfy the space rule
	results = idx.Search("be l", 10)
	assert.Empty(t, results.Students)
}

func TestSearchCaseAndWhitespaceInsensitive(t *testing.T) {
	idx := searchIndex()

	results := idx.Search("  ALICE  ", 10)
	require.Len(t, results.Students, 1)
	assert.Equal(t, "student-1", results.Students[0].ID)
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := searchIndex()

	for _, q := range []string{"", "   "} {
		results := idx.Search(q, 10)
		assert.NotNil(t, results.Students)
		assert.NotNil(t, results.Parents)
		assert.Empty(t, results.Students)
		assert.Empty(t, results.Parents)
	}
}

func TestSearchParentAggregation(t *testing.T) {
	idx := searchIndex()

	results := idx.Search("mary", 10)
	require.Len(t, results.Parents, 1)

	parent := results.Parents[0]
	assert.Equal(t, "mary-smith", parent.ID)
	// both students sharing the guardian name collapse under one identity
	require.Len(t, parent.Students, 2)
	assert.Empty(t, results.Students)
}

func TestSearchOrderingAndLimit(t *testing.T) {
	students := make([]models.Student, 0, 15)
	for i := 0; i < 15; i++ {
		students = append(students, testStudent(
			fmt.Sprintf("student-%d", i+1),
			"Sam",
			fmt.Sprintf("Family%02d", 15-i),
			"2",
		))
	}
	idx := NewIndex(students)

	results := idx.Search("sam", 10)
	require.Len(t, results.Students, 10)

	// sorted by last name, then capped at the limit
	assert.Equal(t, "Family01", results.Students[0].LastName)
	assert.Equal(t, "Family10", results.Students[9].LastName)
}

func TestSearchResultsSortedByName(t *testing.T) {
	idx := searchIndex()

	results := idx.Search("smi", 10)
	require.Len(t, results.Students, 2)
	assert.Equal(t, "Adam", results.Students[0].FirstName)
	assert.Equal(t, "Alice", results.Students[1].FirstName)
}
