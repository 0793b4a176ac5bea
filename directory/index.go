package directory

import (
	"sort"
	"strconv"

	"github.com/facette/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/brightwood-pta/directorybackend/models"
)

// Index exposes the derived views over one load of student records: the
// grade/teacher/student hierarchy, parent identity resolution, the sibling
// graph and address grouping. The student list is immutable after
// construction; every lookup is a full scan, which is fine at single-district
// scale (low thousands of rows).
type Index struct {
	students []models.Student
}

// NewIndex builds an index over the given parsed student records.
func NewIndex(students []models.Student) *Index {
	return &Index{students: students}
}

// Students returns all records in parse order.
func (idx *Index) Students() []models.Student {
	return idx.students
}

// StudentByID returns the record with the given parse-time id, or nil.
func (idx *Index) StudentByID(id string) *models.Student {
	for i := range idx.students {
		if idx.students[i].ID == id {
			return &idx.students[i]
		}
	}
	return nil
}

// GradesSorted returns the distinct grade values in logical order:
// kindergarten first, then ascending numeric grades.
func (idx *Index) GradesSorted() []string {
	seen := make(map[string]bool)
	grades := make([]string, 0, 8)
	for i := range idx.students {
		g := idx.students[i].Grade
		if !seen[g] {
			seen[g] = true
			grades = append(grades, g)
		}
	}

	sort.Slice(grades, func(i, j int) bool {
		if grades[i] == "K" {
			return true
		}
		if grades[j] == "K" {
			return false
		}
		a, _ := strconv.Atoi(grades[i])
		b, _ := strconv.Atoi(grades[j])
		return a < b
	})

	return grades
}

// TeachersForGrade returns the distinct teachers among students of one grade,
// ordered by last name. Deduplication is by "First Last" name key; when the
// same name appears with different rooms, the last row's room wins.
func (idx *Index) TeachersForGrade(grade string) []models.Teacher {
	byName := make(map[string]int)
	teachers := make([]models.Teacher, 0)

	for i := range idx.students {
		s := &idx.students[i]
		if s.Grade != grade {
			continue
		}
		key := s.TeacherFirstName + " " + s.TeacherLastName
		t := models.Teacher{
			FirstName: s.TeacherFirstName,
			LastName:  s.TeacherLastName,
			Grade:     s.Grade,
			Room:      s.TeacherRoom,
		}
		if pos, ok := byName[key]; ok {
			teachers[pos] = t
		} else {
			byName[key] = len(teachers)
			teachers = append(teachers, t)
		}
	}

	c := newCollator()
	sort.SliceStable(teachers, func(i, j int) bool {
		return c.CompareString(teachers[i].LastName, teachers[j].LastName) < 0
	})

	return teachers
}

// AllTeachers returns every distinct teacher name across all grades, with the
// grade and room of its first occurrence, ordered by grade (K first, then
// numeric) and last name.
func (idx *Index) AllTeachers() []models.Teacher {
	seen := make(map[string]bool)
	teachers := make([]models.Teacher, 0)

	for i := range idx.students {
		s := &idx.students[i]
		key := s.TeacherFirstName + " " + s.TeacherLastName
		if seen[key] {
			continue
		}
		seen[key] = true
		teachers = append(teachers, models.Teacher{
			FirstName: s.TeacherFirstName,
			LastName:  s.TeacherLastName,
			Grade:     s.Grade,
			Room:      s.TeacherRoom,
		})
	}

	c := newCollator()
	sort.SliceStable(teachers, func(i, j int) bool {
		a, b := teachers[i], teachers[j]
		if a.Grade != b.Grade {
			if a.Grade == "K" {
				return true
			}
			if b.Grade == "K" {
				return false
			}
			ga, _ := strconv.Atoi(a.Grade)
			gb, _ := strconv.Atoi(b.Grade)
			return ga < gb
		}
		return c.CompareString(a.LastName, b.LastName) < 0
	})

	return teachers
}

// RoomsSorted returns the distinct teacher rooms in natural sort order, so
// "Room 2" lists before "Room 10".
func (idx *Index) RoomsSorted() []string {
	seen := make(map[string]bool)
	rooms := make([]string, 0)
	for i := range idx.students {
		r := idx.students[i].TeacherRoom
		if r != "" && !seen[r] {
			seen[r] = true
			rooms = append(rooms, r)
		}
	}
	natsort.Sort(rooms)
	return rooms
}

// StudentsForTeacher returns all students assigned to the teacher with the
// given exact first and last name, ordered by last name then first name. A
// non-empty grade narrows the match to that grade's section; teachers are
// keyed on name only, so two sections with the same teacher name merge when
// grade is "".
func (idx *Index) StudentsForTeacher(firstName, lastName, grade string) []models.Student {
	students := make([]models.Student, 0)
	for i := range idx.students {
		s := &idx.students[i]
		if s.TeacherFirstName != firstName || s.TeacherLastName != lastName {
			continue
		}
		if grade != "" && s.Grade != grade {
			continue
		}
		students = append(students, *s)
	}

	sortStudentsByName(students)
	return students
}

// ResolveParent builds a parent identity by scanning every student's four
// guardian slots for an exact, case-sensitive name-pair match. Returns nil
// when no slot matches. Contact fields come from the first matching slot
// encountered; all matching students are merged into one list, deduplicated
// by id. Two distinct people sharing a name therefore collapse into one
// identity with the first person's contact data — a known weak-identity
// tradeoff carried over from the source data model.
func (idx *Index) ResolveParent(firstName, lastName string) *models.Parent {
	var parent *models.Parent

	for i := range idx.students {
		s := &idx.students[i]
		for _, g := range s.Guardians() {
			if !g.Present() || *g.FirstName != firstName || *g.LastName != lastName {
				continue
			}
			if parent == nil {
				parent = &models.Parent{
					ID:          models.ParentID(firstName, lastName),
					FirstName:   firstName,
					LastName:    lastName,
					Email:       g.Email,
					Phone:       g.Phone,
					SecondPhone: g.SecondPhone,
					Students:    []models.Student{},
				}
			}
			if !parent.HasStudent(s.ID) {
				parent.Students = append(parent.Students, *s)
			}
		}
	}

	return parent
}

// SiblingsOf returns every other student sharing at least one guardian name
// pair with the given student, ordered by last name then first name. The
// relation is symmetric by construction but weak: inconsistent guardian
// spellings produce false negatives, and unrelated guardians with identical
// names produce false positives.
func (idx *Index) SiblingsOf(student models.Student) []models.Student {
	siblings := make([]models.Student, 0)
	for i := range idx.students {
		s := &idx.students[i]
		if s.ID == student.ID {
			continue
		}
		if sharesGuardian(&student, s) {
			siblings = append(siblings, *s)
		}
	}

	sortStudentsByName(siblings)
	return siblings
}

func sharesGuardian(a, b *models.Student) bool {
	for _, ga := range a.Guardians() {
		if !ga.Present() {
			continue
		}
		for _, gb := range b.Guardians() {
			if gb.Present() && *ga.FirstName == *gb.FirstName && *ga.LastName == *gb.LastName {
				return true
			}
		}
	}
	return false
}

// GroupByAddress groups contact options by their literal formatted address
// string, preserving first-seen group order. Equality is byte-for-byte, so
// whitespace or case variants of the same street address split into separate
// groups; persisted data assumes literal-string keys.
func GroupByAddress(options []models.ContactOption) []models.AddressGroup {
	byAddress := make(map[string]int)
	groups := make([]models.AddressGroup, 0)

	for _, opt := range options {
		addr := opt.Address
		if addr == "" {
			addr = opt.Value
		}
		if addr == "" {
			continue
		}
		pos, ok := byAddress[addr]
		if !ok {
			pos = len(groups)
			byAddress[addr] = pos
			groups = append(groups, models.AddressGroup{Address: addr})
		}
		groups[pos].Contacts = append(groups[pos].Contacts, opt)
	}

	return groups
}

// newCollator returns an English collator for name ordering. Collators are
// not safe for concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

func sortStudentsByName(students []models.Student) {
	c := newCollator()
	sort.SliceStable(students, func(i, j int) bool {
		if cmp := c.CompareString(students[i].LastName, students[j].LastName); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(students[i].FirstName, students[j].FirstName) < 0
	})
}
