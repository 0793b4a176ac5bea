package models

import "time"

// CalendarEvent is one school event from the district ICS feed (or from the
// built-in mock set when every fetch attempt fails).
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	AllDay      bool      `json:"allDay"`
}
