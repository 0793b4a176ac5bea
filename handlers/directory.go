package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brightwood-pta/directorybackend/directory"
	"github.com/brightwood-pta/directorybackend/models"
)

// DirectoryHandler serves the browsable directory views: grades, teachers,
// classrooms, students, parents and siblings. All reads go against the
// in-memory index built at startup.
type DirectoryHandler struct {
	Index *directory.Index
}

func (dh *DirectoryHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students := dh.Index.Students()
	if students == nil {
		students = []models.Student{}
	}
	writeJSON(w, http.StatusOK, students)
}

func (dh *DirectoryHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "student_id")

	student := dh.Index.StudentByID(studentID)
	if student == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Student not found"})
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (dh *DirectoryHandler) GetSiblings(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "student_id")

	student := dh.Index.StudentByID(studentID)
	if student == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Student not found"})
		return
	}
	writeJSON(w, http.StatusOK, dh.Index.SiblingsOf(*student))
}

func (dh *DirectoryHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dh.Index.GradesSorted())
}

func (dh *DirectoryHandler) ListTeachersForGrade(w http.ResponseWriter, r *http.Request) {
	grade := chi.URLParam(r, "grade")
	writeJSON(w, http.StatusOK, dh.Index.TeachersForGrade(grade))
}

func (dh *DirectoryHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dh.Index.AllTeachers())
}

func (dh *DirectoryHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dh.Index.RoomsSorted())
}

// ListStudentsForTeacher returns the roster for ?first=&last= with an
// optional &grade= narrowing to one section.
func (dh *DirectoryHandler) ListStudentsForTeacher(w http.ResponseWriter, r *http.Request) {
	firstName := r.URL.Query().Get("first")
	lastName := r.URL.Query().Get("last")
	grade := r.URL.Query().Get("grade")

	if firstName == "" || lastName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required query parameters: first, last"})
		return
	}

	writeJSON(w, http.StatusOK, dh.Index.StudentsForTeacher(firstName, lastName, grade))
}

// ResolveParent looks up a parent identity by exact guardian name. Absence is
// a valid outcome for the index, but over HTTP it maps to 404.
func (dh *DirectoryHandler) ResolveParent(w http.ResponseWriter, r *http.Request) {
	firstName := r.URL.Query().Get("first")
	lastName := r.URL.Query().Get("last")

	if firstName == "" || lastName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required query parameters: first, last"})
		return
	}

	parent := dh.Index.ResolveParent(firstName, lastName)
	if parent == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Parent not found"})
		return
	}
	writeJSON(w, http.StatusOK, parent)
}
