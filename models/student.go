package models

import "fmt"

// Student is one row of the directory CSV export. All guardian fields and the
// secondary address are nullable; presence is data-dependent. The ID is
// assigned sequentially at parse time and is only stable within one load.
// JSON field names match the shape persisted by favorites snapshots, so they
// must not be renamed.
type Student struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Nickname  *string `json:"nickname"`
	Grade     string  `json:"grade"`
	Gender    string  `json:"gender"`

	StudentEmail *string `json:"studentEmail"`
	Phone        *string `json:"phone"`

	TeacherFirstName string `json:"teacherFirstName"`
	TeacherLastName  string `json:"teacherLastName"`
	TeacherRoom      string `json:"teacherRoom"`

	// Primary address and guardians
	F1AddressLine1 string `json:"f1AddressLine1"`
	F1City         string `json:"f1City"`
	F1State        string `json:"f1State"`
	F1Zip          string `json:"f1Zip"`

	F1G1FirstName   *string `json:"f1g1FirstName"`
	F1G1LastName    *string `json:"f1g1LastName"`
	F1G1Phone       *string `json:"f1g1Phone"`
	F1G1SecondPhone *string `json:"f1g1SecondPhone"`
	F1G1Email       *string `json:"f1g1Email"`

	F1G2FirstName   *string `json:"f1g2FirstName"`
	F1G2LastName    *string `json:"f1g2LastName"`
	F1G2Phone       *string `json:"f1g2Phone"`
	F1G2SecondPhone *string `json:"f1g2SecondPhone"`
	F1G2Email       *string `json:"f1g2Email"`

	// Secondary address and guardians (optional)
	F2AddressLine1 *string `json:"f2AddressLine1"`
	F2City         *string `json:"f2City"`
	F2State        *string `json:"f2State"`
	F2Zip          *string `json:"f2Zip"`

	F2G1FirstName   *string `json:"f2g1FirstName"`
	F2G1LastName    *string `json:"f2g1LastName"`
	F2G1Phone       *string `json:"f2g1Phone"`
	F2G1SecondPhone *string `json:"f2g1SecondPhone"`
	F2G1Email       *string `json:"f2g1Email"`

	F2G2FirstName   *string `json:"f2g2FirstName"`
	F2G2LastName    *string `json:"f2g2LastName"`
	F2G2Phone       *string `json:"f2g2Phone"`
	F2G2SecondPhone *string `json:"f2g2SecondPhone"`
	F2G2Email       *string `json:"f2g2Email"`
}

// Guardian is one of the four fixed guardian slots on a student record
// (f1g1, f1g2, f2g1, f2g2). A slot is present when both name parts are set.
type Guardian struct {
	Slot        string
	FirstName   *string
	LastName    *string
	Phone       *string
	SecondPhone *string
	Email       *string
}

// Present reports whether the slot actually holds a guardian.
func (g Guardian) Present() bool {
	return g.FirstName != nil && g.LastName != nil
}

// Guardians returns the four guardian slots in fixed order. Absent slots are
// included so callers can address slots positionally; check Present().
func (s *Student) Guardians() [4]Guardian {
	return [4]Guardian{
		{Slot: "f1g1", FirstName: s.F1G1FirstName, LastName: s.F1G1LastName, Phone: s.F1G1Phone, SecondPhone: s.F1G1SecondPhone, Email: s.F1G1Email},
		{Slot: "f1g2", FirstName: s.F1G2FirstName, LastName: s.F1G2LastName, Phone: s.F1G2Phone, SecondPhone: s.F1G2SecondPhone, Email: s.F1G2Email},
		{Slot: "f2g1", FirstName: s.F2G1FirstName, LastName: s.F2G1LastName, Phone: s.F2G1Phone, SecondPhone: s.F2G1SecondPhone, Email: s.F2G1Email},
		{Slot: "f2g2", FirstName: s.F2G2FirstName, LastName: s.F2G2LastName, Phone: s.F2G2Phone, SecondPhone: s.F2G2SecondPhone, Email: s.F2G2Email},
	}
}

// FullName returns "First Last".
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// PrimaryAddress returns the formatted primary address string. The literal
// formatting is the grouping key for address groups and is never normalized.
func (s *Student) PrimaryAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", s.F1AddressLine1, s.F1City, s.F1State, s.F1Zip)
}

// SecondaryAddress returns the formatted secondary address, or "" when the
// record has no second household.
func (s *Student) SecondaryAddress() string {
	if s.F2AddressLine1 == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s, %s %s", deref(s.F2AddressLine1), deref(s.F2City), deref(s.F2State), deref(s.F2Zip))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
