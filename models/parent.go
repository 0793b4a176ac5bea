package models

import "strings"

// Parent is a derived identity, not a row in the source data: guardian slots
// across student records that share the same first+last name collapse into
// one Parent. The ID is the lower-cased "first-last" name key, so two real
// people with the same name merge; contact fields come from the first record
// in which the name pair was seen.
type Parent struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	SecondPhone *string   `json:"secondPhone"`
	Students    []Student `json:"students"`
}

// ParentID builds the weak identity key for a guardian name pair.
func ParentID(firstName, lastName string) string {
	return strings.ToLower(firstName + "-" + lastName)
}

// FullName returns "First Last".
func (p *Parent) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Address returns the formatted address of the parent's first associated
// student, or "" when the parent has no students attached.
func (p *Parent) Address() string {
	if len(p.Students) > 0 {
		return p.Students[0].PrimaryAddress()
	}
	return ""
}

// HasStudent reports whether a student id is already in the parent's list.
func (p *Parent) HasStudent(studentID string) bool {
	for _, s := range p.Students {
		if s.ID == studentID {
			return true
		}
	}
	return false
}
