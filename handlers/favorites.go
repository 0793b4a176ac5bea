package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/brightwood-pta/directorybackend/directory"
	"github.com/brightwood-pta/directorybackend/favorites"
	"github.com/brightwood-pta/directorybackend/models"
)

// FavoritesHandler serves the persisted favorites set and its derived
// contact options. Mutations go through the store; the index is only used to
// snapshot students and resolve parents at add time.
type FavoritesHandler struct {
	Index *directory.Index
	Store *favorites.Store
}

func (fh *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fh.Store.Load())
}

func (fh *FavoritesHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "student_id")

	student := fh.Index.StudentByID(studentID)
	if student == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Student not found"})
		return
	}

	writeJSON(w, http.StatusOK, fh.Store.AddStudent(*student))
}

func (fh *FavoritesHandler) AddParent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields: firstName, lastName"})
		return
	}

	parent := fh.Index.ResolveParent(req.FirstName, req.LastName)
	if parent == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Parent not found"})
		return
	}

	writeJSON(w, http.StatusOK, fh.Store.AddParent(*parent))
}

func (fh *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	favoriteID := chi.URLParam(r, "favorite_id")
	// removing an absent id is a no-op; the response is the (unchanged) set
	writeJSON(w, http.StatusOK, fh.Store.Remove(favoriteID))
}

// ContactOptions expands the current favorites into selectable contact rows
// and address groups. The four channel filters default to enabled and are
// disabled with ?primaryPhones=false etc.
func (fh *FavoritesHandler) ContactOptions(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r.URL.Query())
	options, groups := favorites.DeriveContactOptions(fh.Store.Load(), filters)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"options":       options,
		"addressGroups": groups,
	})
}

// GroupLink builds a group SMS or email link from explicitly selected contact
// option ids.
func (fh *FavoritesHandler) GroupLink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Channel   string   `json:"channel"`
		OptionIDs []string `json:"optionIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}

	selected := make(map[string]bool, len(req.OptionIDs))
	for _, id := range req.OptionIDs {
		selected[id] = true
	}

	options, _ := favorites.DeriveContactOptions(fh.Store.Load(), favorites.AllFilters())
	for i := range options {
		options[i].Selected = selected[options[i].ID]
	}

	var link string
	switch req.Channel {
	case models.ContactTypePhone:
		link = favorites.GroupSMSLink(options)
	case models.ContactTypeEmail:
		link = favorites.GroupEmailLink(options)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid channel; expected 'phone' or 'email'"})
		return
	}

	if link == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No selected contacts for channel " + req.Channel})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"link": link})
}

func filtersFromQuery(query url.Values) favorites.Filters {
	enabled := func(name string) bool {
		return query.Get(name) != "false"
	}
	return favorites.Filters{
		PrimaryPhones:   enabled("primaryPhones"),
		SecondaryPhones: enabled("secondaryPhones"),
		Emails:          enabled("emails"),
		Addresses:       enabled("addresses"),
	}
}
