package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwood-pta/directorybackend/models"
)

func strPtr(s string) *string { return &s }

func testStudent(id, first, last, grade string) models.Student {
	return models.Student{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Grade:     grade,
	}
}

func withGuardian(s models.Student, first, last, phone, email string) models.Student {
	s.F1G1FirstName = strPtr(first)
	s.F1G1LastName = strPtr(last)
	if phone != "" {
		s.F1G1Phone = strPtr(phone)
	}
	if email != "" {
		s.F1G1Email = strPtr(email)
	}
	return s
}

func TestGradesSorted(t *testing.T) {
	idx := NewIndex([]models.Student{
		testStudent("student-1", "A", "A", "2"),
		testStudent("student-2", "B", "B", "K"),
		testStudent("student-3", "C", "C", "1"),
		testStudent("student-4", "D", "D", "2"),
	})

	assert.Equal(t, []string{"K", "1", "2"}, idx.GradesSorted())
}

func TestTeachersForGradeDedupeAndRoom(t *testing.T) {
	a := testStudent("student-1", "A", "A", "3")
	a.TeacherFirstName, a.TeacherLastName, a.TeacherRoom = "Pat", "Jones", "Room 12"
	b := testStudent("student-2", "B", "B", "3")
	b.TeacherFirstName, b.TeacherLastName, b.TeacherRoom = "Dana", "Adams", "Room 4"
	c := testStudent("student-3", "C", "C", "3")
	c.TeacherFirstName, c.TeacherLastName, c.TeacherRoom = "Pat", "Jones", "Room 14"
	other := testStudent("student-4", "D", "D", "4")
	other.TeacherFirstName, other.TeacherLastName = "Sam", "Baker"

	idx := NewIndex([]models.Student{a, b, c, other})
	teachers := idx.TeachersForGrade("3")

	require.Len(t, teachers, 2)
	assert.Equal(t, "Adams", teachers[0].LastName)
	assert.Equal(t, "Jones", teachers[1].LastName)
	// when the same teacher name appears with two rooms, the last row wins
	assert.Equal(t, "Room 14", teachers[1].Room)
}

func TestStudentsForTeacher(t *testing.T) {
	a := testStudent("student-1", "Zoe", "Young", "3")
	a.TeacherFirstName, a.TeacherLastName = "Pat", "Jones"
	b := testStudent("student-2", "Amy", "Young", "3")
	b.TeacherFirstName, b.TeacherLastName = "Pat", "Jones"
	c := testStudent("student-3", "Ben", "Adams", "4")
	c.TeacherFirstName, c.TeacherLastName = "Pat", "Jones"
	d := testStudent("student-4", "Cal", "Brown", "3")
	d.TeacherFirstName, d.TeacherLastName = "Dana", "Miller"

	idx := NewIndex([]models.Student{a, b, c, d})

	all := idx.StudentsForTeacher("Pat", "Jones", "")
	require.Len(t, all, 3)
	// last name then first name
	assert.Equal(t, "student-3", all[0].ID)
	assert.Equal(t, "Amy", all[1].FirstName)
	assert.Equal(t, "Zoe", all[2].FirstName)

	thirdGrade := idx.StudentsForTeacher("Pat", "Jones", "3")
	require.Len(t, thirdGrade, 2)

	assert.Empty(t, idx.StudentsForTeacher("Nobody", "Here", ""))
}

func TestRoomsSortedNaturally(t *testing.T) {
	a := testStudent("student-1", "A", "A", "1")
	a.TeacherRoom = "Room 10"
	b := testStudent("student-2", "B", "B", "1")
	b.TeacherRoom = "Room 2"
	c := testStudent("student-3", "C", "C", "1")
	c.TeacherRoom = "Room 10"

	idx := NewIndex([]models.Student{a, b, c})
	assert.Equal(t, []string{"Room 2", "Room 10"}, idx.RoomsSorted())
}

func TestResolveParentMergesByName(t *testing.T) {
	a := withGuardian(testStudent("student-1", "Alice", "Smith", "3"), "Mary", "Smith", "847-555-0101", "mary@example.com")
	// different person, same guardian name, different contact data
	b := withGuardian(testStudent("student-2", "Ben", "Lee", "K"), "Mary", "Smith", "847-555-9999", "other@example.com")

	idx := NewIndex([]models.Student{a, b})
	parent := idx.ResolveParent("Mary", "Smith")

	require.NotNil(t, parent)
	assert.Equal(t, "mary-smith", parent.ID)
	// first matching slot's contact data wins, even across distinct people
	require.NotNil(t, parent.Phone)
	assert.Equal(t, "847-555-0101", *parent.Phone)
	require.Len(t, parent.Students, 2)
	assert.Equal(t, "student-1", parent.Students[0].ID)
	assert.Equal(t, "student-2", parent.Students[1].ID)
}

func TestResolveParentCaseSensitive(t *testing.T) {
	a := withGuardian(testStudent("student-1", "Alice", "Smith", "3"), "Mary", "Smith", "", "")
	idx := NewIndex([]models.Student{a})

	assert.Nil(t, idx.ResolveParent("mary", "smith"))
	assert.Nil(t, idx.ResolveParent("Mary", "Jones"))
	assert.NotNil(t, idx.ResolveParent("Mary", "Smith"))
}

func TestSiblingsSymmetric(t *testing.T) {
	a := withGuardian(testStudent("student-1", "Alice", "Smith", "3"), "Mary", "Smith", "", "")
	b := withGuardian(testStudent("student-2", "Adam", "Smith", "K"), "Mary", "Smith", "", "")
	c := withGuardian(testStudent("student-3", "Ben", "Lee", "2"), "Chris", "Lee", "", "")

	idx := NewIndex([]models.Student{a, b, c})

	siblingsOfA := idx.SiblingsOf(a)
	require.Len(t, siblingsOfA, 1)
	assert.Equal(t, "student-2", siblingsOfA[0].ID)

	siblingsOfB := idx.SiblingsOf(b)
	require.Len(t, siblingsOfB, 1)
	assert.Equal(t, "student-1", siblingsOfB[0].ID)

	assert.Empty(t, idx.SiblingsOf(c))
}

func TestSiblingsExcludeSelfAndSpellingVariants(t *testing.T) {
	a := withGuardian(testStudent("student-1", "Alice", "Smith", "3"), "Mary", "Smith", "", "")
	// same family, guardian spelled differently: no sibling edge
	b := withGuardian(testStudent("student-2", "Adam", "Smith", "K"), "Mary Ann", "Smith", "", "")

	idx := NewIndex([]models.Student{a, b})
	assert.Empty(t, idx.SiblingsOf(a))
}

func TestGroupByAddressLiteralKeys(t *testing.T) {
	options := []models.ContactOption{
		{ID: "1", Type: models.ContactTypeAddress, Value: "10 Oak St, Lakewood, IL 60045"},
		{ID: "2", Type: models.ContactTypePhone, Value: "847-555-0101", Address: "10 Oak St, Lakewood, IL 60045"},
		// whitespace variant of the same street address splits into its own group
		{ID: "3", Type: models.ContactTypeAddress, Value: "10 Oak St,  Lakewood, IL 60045"},
		{ID: "4", Type: models.ContactTypeAddress, Value: ""},
	}

	groups := GroupByAddress(options)
	require.Len(t, groups, 2)
	assert.Equal(t, "10 Oak St, Lakewood, IL 60045", groups[0].Address)
	require.Len(t, groups[0].Contacts, 2)
	assert.Equal(t, "10 Oak St,  Lakewood, IL 60045", groups[1].Address)
	require.Len(t, groups[1].Contacts, 1)
}

func TestStudentByID(t *testing.T) {
	idx := NewIndex([]models.Student{testStudent("student-1", "Alice", "Smith", "3")})

	require.NotNil(t, idx.StudentByID("student-1"))
	assert.Nil(t, idx.StudentByID("student-99"))
}
