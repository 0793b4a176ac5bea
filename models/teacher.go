package models

// Teacher is a derived classroom entry: one distinct (first, last) teacher
// name among the student records, with grade and room taken from the source
// rows. Teachers are keyed strictly on exact name match; there is no teacher
// id in the CSV.
type Teacher struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Grade     string `json:"grade"`
	Room      string `json:"room"`
}

// FullName returns "First Last".
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
