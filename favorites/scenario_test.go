package favorites

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwood-pta/directorybackend/directory"
	"github.com/brightwood-pta/directorybackend/models"
)

// Exercises the whole chain: CSV parse, sibling resolution via a shared
// guardian in different slots, parent resolution, favoriting, and contact
// option expansion.
func TestSharedGuardianScenario(t *testing.T) {
	csv := strings.Join([]string{
		"First Name,Last Name,Gr,F1 Address Line 1,F1 City,F1 State,F1 Zip,F1/G1 First Name,F1/G1 Last Name,F1/G1 Phone,F1/G1 E-Mail,F1/G2 First Name,F1/G2 Last Name,F1/G2 Phone",
		"Mia,Lee,2,10 Oak St,Lakewood,IL,60045,Sam,Lee,847-555-0101,sam@example.com,,,",
		"Noah,Lee,K,10 Oak St,Lakewood,IL,60045,Jo,Park,847-555-0303,,Sam,Lee,847-555-0101",
	}, "\n")

	students := directory.ParseCSV(csv)
	require.Len(t, students, 2)
	idx := directory.NewIndex(students)

	// Sam Lee is f1g1 on the first row and f1g2 on the second; the shared
	// name pair links the two students as siblings
	siblings := idx.SiblingsOf(students[0])
	require.Len(t, siblings, 1)
	assert.Equal(t, "student-2", siblings[0].ID)

	parent := idx.ResolveParent("Sam", "Lee")
	require.NotNil(t, parent)
	assert.Equal(t, "sam-lee", parent.ID)
	require.Len(t, parent.Students, 2)
	// first matching slot donates contact data
	require.NotNil(t, parent.Email)
	assert.Equal(t, "sam@example.com", *parent.Email)

	store := NewStore(newMemStorage())
	state := store.AddParent(*parent)
	require.Len(t, state.Items, 1)

	options, groups := DeriveContactOptions(state, AllFilters())

	var addresses, others []models.ContactOption
	for _, opt := range options {
		if opt.Type == models.ContactTypeAddress {
			addresses = append(addresses, opt)
		} else {
			others = append(others, opt)
		}
	}

	require.Len(t, addresses, 1)
	assert.True(t, addresses[0].Selected)
	assert.Equal(t, "10 Oak St, Lakewood, IL 60045", addresses[0].Value)

	require.NotEmpty(t, others)
	for _, opt := range others {
		assert.False(t, opt.Selected, "option %s should start unselected", opt.ID)
	}

	require.Len(t, groups, 1)
	assert.Equal(t, "10 Oak St, Lakewood, IL 60045", groups[0].Address)
}
