package handlers

import (
	"net/http"

	"github.com/brightwood-pta/directorybackend/calendar"
)

// CalendarHandler serves the school events feed.
type CalendarHandler struct {
	Client *calendar.Client
}

// ListEvents fetches and returns the current events. The client never fails
// outright; an unreachable feed degrades to mock events.
func (ch *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ch.Client.FetchEvents(r.Context()))
}
