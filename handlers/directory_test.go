package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightwood-pta/directorybackend/directory"
	"github.com/brightwood-pta/directorybackend/favorites"
	"github.com/brightwood-pta/directorybackend/models"
)

// memStorage backs the favorites store in handler tests.
type memStorage struct {
	values map[string]string
}

func (m *memStorage) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStorage) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memStorage) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func strPtr(s string) *string { return &s }

func testRouter() *chi.Mux {
	alice := models.Student{
		ID: "student-1", FirstName: "Alice", LastName: "Smith", Grade: "3",
		TeacherFirstName: "Pat", TeacherLastName: "Jones", TeacherRoom: "Room 12",
		F1AddressLine1: "10 Oak St", F1City: "Lakewood", F1State: "IL", F1Zip: "60045",
		F1G1FirstName: strPtr("Mary"), F1G1LastName: strPtr("Smith"),
		F1G1Phone: strPtr("847-555-0101"), F1G1Email: strPtr("mary@example.com"),
	}
	adam := models.Student{
		ID: "student-2", FirstName: "Adam", LastName: "Smith", Grade: "K",
		TeacherFirstName: "Dana", TeacherLastName: "Miller", TeacherRoom: "Room 2",
		F1AddressLine1: "10 Oak St", F1City: "Lakewood", F1State: "IL", F1Zip: "60045",
		F1G1FirstName: strPtr("Mary"), F1G1LastName: strPtr("Smith"),
		F1G1Phone: strPtr("847-555-0101"), F1G1Email: strPtr("mary@example.com"),
	}

	idx := directory.NewIndex([]models.Student{alice, adam})
	store := favorites.NewStore(&memStorage{values: make(map[string]string)})

	dh := &DirectoryHandler{Index: idx}
	sh := &SearchHandler{Index: idx, Limit: 10}
	fh := &FavoritesHandler{Index: idx, Store: store}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/students", dh.ListStudents)
		r.Get("/students/{student_id}", dh.GetStudent)
		r.Get("/students/{student_id}/siblings", dh.GetSiblings)
		r.Get("/grades", dh.ListGrades)
		r.Get("/grades/{grade}/teachers", dh.ListTeachersForGrade)
		r.Get("/teachers", dh.ListTeachers)
		r.Get("/teachers/students", dh.ListStudentsForTeacher)
		r.Get("/rooms", dh.ListRooms)
		r.Get("/parents", dh.ResolveParent)
		r.Get("/search", sh.Search)
		r.Get("/favorites", fh.ListFavorites)
		r.Post("/favorites/students/{student_id}", fh.AddStudent)
		r.Post("/favorites/parents", fh.AddParent)
		r.Delete("/favorites/{favorite_id}", fh.RemoveFavorite)
		r.Get("/favorites/contact-options", fh.ContactOptions)
		r.Post("/favorites/group-link", fh.GroupLink)
	})
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetStudent(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/students/student-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var student models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &student))
	assert.Equal(t, "Alice", student.FirstName)

	rec = doRequest(t, r, http.MethodGet, "/api/students/student-99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSiblings(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/students/student-1/siblings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var siblings []models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &siblings))
	require.Len(t, siblings, 1)
	assert.Equal(t, "student-2", siblings[0].ID)
}

func TestListGradesAndRooms(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/grades", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var grades []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grades))
	assert.Equal(t, []string{"K", "3"}, grades)

	rec = doRequest(t, r, http.MethodGet, "/api/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rooms []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rooms))
	assert.Equal(t, []string{"Room 2", "Room 12"}, rooms)
}

func TestListStudentsForTeacherValidation(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/teachers/students?first=Pat", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/api/teachers/students?first=Pat&last=Jones", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var students []models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "student-1", students[0].ID)
}

func TestResolveParentEndpoint(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/parents?first=Mary&last=Smith", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var parent models.Parent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parent))
	assert.Equal(t, "mary-smith", parent.ID)
	assert.Len(t, parent.Students, 2)

	rec = doRequest(t, r, http.MethodGet, "/api/parents?first=Nobody&last=Here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodGet, "/api/search?q=ali", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var results directory.SearchResults
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results.Students, 1)
	assert.Equal(t, "student-1", results.Students[0].ID)

	// no query still returns the two empty lists
	rec = doRequest(t, r, http.MethodGet, "/api/search", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"students":[],"parents":[]}`, rec.Body.String())
}

func TestFavoritesLifecycle(t *testing.T) {
	r := testRouter()

	rec := doRequest(t, r, http.MethodPost, "/api/favorites/students/student-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var state models.FavoritesState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Len(t, state.Items, 1)
	assert.Equal(t, "student-fav-student-1", state.Items[0].ID)

	rec = doRequest(t, r, http.MethodPost, "/api/favorites/parents", `{"firstName":"Mary","lastName":"Smith"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Len(t, state.Items, 2)

	rec = doRequest(t, r, http.MethodDelete, "/api/favorites/student-fav-student-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Len(t, state.Items, 1)
	assert.Equal(t, "parent-fav-mary-smith", state.Items[0].ID)

	rec = doRequest(t, r, http.MethodPost, "/api/favorites/students/student-99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/favorites/parents", `{"firstName":"Nobody","lastName":"Here"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContactOptionsEndpoint(t *testing.T) {
	r := testRouter()
	doRequest(t, r, http.MethodPost, "/api/favorites/students/student-1", "")

	rec := doRequest(t, r, http.MethodGet, "/api/favorites/contact-options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Options       []models.ContactOption `json:"options"`
		AddressGroups []models.AddressGroup  `json:"addressGroups"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Options, 3)
	assert.Equal(t, models.ContactTypeAddress, body.Options[0].Type)
	assert.True(t, body.Options[0].Selected)
	require.Len(t, body.AddressGroups, 1)

	// disabling a channel drops its options
	rec = doRequest(t, r, http.MethodGet, "/api/favorites/contact-options?primaryPhones=false&emails=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Options, 1)
	assert.Equal(t, models.ContactTypeAddress, body.Options[0].Type)
}

func TestGroupLinkEndpoint(t *testing.T) {
	r := testRouter()
	doRequest(t, r, http.MethodPost, "/api/favorites/students/student-1", "")

	rec := doRequest(t, r, http.MethodPost, "/api/favorites/group-link",
		`{"channel":"phone","optionIds":["student-fav-student-1-f1g1-phone"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sms:8475550101", body["link"])

	rec = doRequest(t, r, http.MethodPost, "/api/favorites/group-link",
		`{"channel":"email","optionIds":["student-fav-student-1-f1g1-email"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "mailto:mary@example.com", body["link"])

	rec = doRequest(t, r, http.MethodPost, "/api/favorites/group-link",
		`{"channel":"fax","optionIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPost, "/api/favorites/group-link",
		`{"channel":"phone","optionIds":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
