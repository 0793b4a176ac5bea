package favorites

import (
	"encoding/json"
	"log"
	"time"

	"github.com/brightwood-pta/directorybackend/models"
)

// StorageKey is the fixed key the favorites blob is persisted under. The
// stored value is the FavoritesState JSON; there is no schema version field.
const StorageKey = "school-directory-favorites"

// Storage is the injected persistence backend: a durable string key/value
// store. Get reports absence via the bool, not an error.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store is the favorites collection. Every operation re-reads the persisted
// blob, mutates it, and writes it back; there is no locking, so concurrent
// writers race with last-write-wins semantics. The design assumes a single
// active caller.
//
// Persistence failures never surface to callers: a failed read behaves as an
// empty store, and a failed write is logged while the in-memory result is
// still returned. Durability is best-effort.
type Store struct {
	storage Storage
}

// NewStore creates a favorites store over the given backend.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load reads the persisted favorites. Read or decode failures are logged and
// fall back to an empty set.
func (st *Store) Load() models.FavoritesState {
	empty := models.FavoritesState{Items: []models.FavoriteItem{}}

	value, ok, err := st.storage.Get(StorageKey)
	if err != nil {
		log.Printf("Error loading favorites: %v", err)
		return empty
	}
	if !ok {
		return empty
	}

	var state models.FavoritesState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		log.Printf("Error decoding favorites: %v", err)
		return empty
	}
	if state.Items == nil {
		state.Items = []models.FavoriteItem{}
	}
	return state
}

func (st *Store) save(state models.FavoritesState) {
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("Error encoding favorites: %v", err)
		return
	}
	if err := st.storage.Set(StorageKey, string(data)); err != nil {
		// the in-memory state the caller got back still reflects the change;
		// only durability is lost
		log.Printf("Error saving favorites: %v", err)
	}
}

// AddStudent snapshots a student into the favorites set. Idempotent by
// student id: adding an already-favorited student neither duplicates nor
// refreshes the stored snapshot.
func (st *Store) AddStudent(student models.Student) models.FavoritesState {
	state := st.Load()

	for _, item := range state.Items {
		if item.Type == models.FavoriteTypeStudent && item.StudentID == student.ID {
			return state
		}
	}

	snapshot := student
	state.Items = append(state.Items, models.FavoriteItem{
		ID:          "student-fav-" + student.ID,
		Type:        models.FavoriteTypeStudent,
		StudentID:   student.ID,
		StudentName: student.FullName(),
		Student:     &snapshot,
		DateAdded:   timestamp(),
	})

	st.save(state)
	return state
}

// AddParent snapshots a resolved parent identity into the favorites set.
// Idempotent by parent identity id.
func (st *Store) AddParent(parent models.Parent) models.FavoritesState {
	state := st.Load()

	for _, item := range state.Items {
		if item.Type == models.FavoriteTypeParent && item.Parent != nil && item.Parent.ID == parent.ID {
			return state
		}
	}

	snapshot := parent
	state.Items = append(state.Items, models.FavoriteItem{
		ID:        "parent-fav-" + parent.ID,
		Type:      models.FavoriteTypeParent,
		Parent:    &snapshot,
		DateAdded: timestamp(),
	})

	st.save(state)
	return state
}

// Remove deletes a favorite by its synthetic id. Removing an absent id is a
// no-op, not an error.
func (st *Store) Remove(favoriteID string) models.FavoritesState {
	state := st.Load()

	items := make([]models.FavoriteItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.ID != favoriteID {
			items = append(items, item)
		}
	}
	state.Items = items

	st.save(state)
	return state
}

// IsStudentFavorited reports whether a student id is in the favorites set.
func (st *Store) IsStudentFavorited(studentID string) bool {
	for _, item := range st.Load().Items {
		if item.Type == models.FavoriteTypeStudent && item.StudentID == studentID {
			return true
		}
	}
	return false
}

// IsParentFavorited reports whether a parent identity id is in the favorites
// set.
func (st *Store) IsParentFavorited(parentID string) bool {
	for _, item := range st.Load().Items {
		if item.Type == models.FavoriteTypeParent && item.Parent != nil && item.Parent.ID == parentID {
			return true
		}
	}
	return false
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
