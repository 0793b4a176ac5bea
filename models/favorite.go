package models

// Favorite types. The string values are part of the persisted favorites blob.
const (
	FavoriteTypeStudent = "student"
	FavoriteTypeParent  = "parent"
)

// FavoriteItem is a persisted snapshot of a student or parent, not a live
// reference: if the CSV changes, the snapshot goes stale. There is no version
// field in the persisted JSON, so renaming any field breaks existing stores.
type FavoriteItem struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	StudentID   string   `json:"studentId,omitempty"`
	StudentName string   `json:"studentName,omitempty"`
	Student     *Student `json:"student,omitempty"`
	Parent      *Parent  `json:"parent,omitempty"`
	DateAdded   string   `json:"dateAdded"`
}

// FavoritesState is the full persisted favorites collection.
type FavoritesState struct {
	Items []FavoriteItem `json:"items"`
}

// ContactOption is a selectable per-channel entry derived from a favorite for
// bulk messaging. Not persisted; recomputed whenever favorites or filter
// toggles change.
type ContactOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"` // "phone", "email" or "address"
	PhoneType string `json:"phoneType,omitempty"`
	Value     string `json:"value"`
	Selected  bool   `json:"selected"`
	Address   string `json:"address,omitempty"`
	ParentID  string `json:"parentId,omitempty"`
	StudentID string `json:"studentId,omitempty"`
}

// Contact option types and phone subtypes.
const (
	ContactTypePhone   = "phone"
	ContactTypeEmail   = "email"
	ContactTypeAddress = "address"

	PhoneTypePrimary   = "primary"
	PhoneTypeSecondary = "secondary"
)

// AddressGroup collects the address contact options that share one literal
// formatted address string. Whitespace or case variants of the same street
// address split into separate groups; the string is the key.
type AddressGroup struct {
	Address  string          `json:"address"`
	Contacts []ContactOption `json:"contacts"`
}
