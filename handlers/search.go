package handlers

import (
	"net/http"

	"github.com/brightwood-pta/directorybackend/directory"
)

// SearchHandler serves the per-keystroke prefix search over students and
// parent identities.
type SearchHandler struct {
	Index *directory.Index
	Limit int
}

// Search runs one full pass for ?q=. A blank query returns two empty lists,
// not the whole directory; callers distinguish "no query" from "no results"
// by the query string itself.
func (sh *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, sh.Index.Search(query, sh.Limit))
}
