package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brightwood-pta/directorybackend/models"
)

// ParseICal extracts VEVENT blocks from an iCalendar document. Only the
// fields the calendar view displays are read (SUMMARY, DESCRIPTION, LOCATION,
// DTSTART, DTEND, UID); everything else, including recurrence rules, is
// ignored. Folded continuation lines are appended to the preceding text
// property. Events missing a title or either timestamp are dropped.
func ParseICal(icalData string) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0)
	lines := strings.Split(icalData, "\n")

	var current *models.CalendarEvent
	var hasStart, hasEnd bool
	lastKey := ""

	for _, rawLine := range lines {
		line := strings.TrimSpace(rawLine)

		// folded lines start with a space and continue the previous property
		if strings.HasPrefix(rawLine, " ") && current != nil {
			switch lastKey {
			case "DESCRIPTION":
				current.Description += line
			case "SUMMARY":
				current.Title += line
			case "LOCATION":
				current.Location += line
			}
			continue
		}

		switch {
		case line == "BEGIN:VEVENT":
			current = &models.CalendarEvent{ID: fmt.Sprintf("event-%d", len(events))}
			hasStart, hasEnd = false, false
			lastKey = ""
		case line == "END:VEVENT":
			if current != nil && current.Title != "" && hasStart && hasEnd {
				events = append(events, *current)
			}
			current = nil
		case current != nil:
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			lastKey = strings.SplitN(key, ";", 2)[0]

			switch {
			case key == "SUMMARY":
				current.Title = value
			case key == "DESCRIPTION":
				current.Description = value
			case key == "LOCATION":
				current.Location = value
			case key == "UID":
				current.ID = value
			case key == "DTSTART" || strings.HasPrefix(key, "DTSTART;"):
				current.Start = parseICalDate(value)
				hasStart = true
				if len(value) == 8 || strings.Contains(key, "VALUE=DATE") {
					current.AllDay = true
				}
			case key == "DTEND" || strings.HasPrefix(key, "DTEND;"):
				current.End = parseICalDate(value)
				hasEnd = true
			}
		}
	}

	return events
}

// parseICalDate reads YYYYMMDD and YYYYMMDDTHHMMSS[Z] forms. Timezone ids are
// ignored; wall-clock components are kept as local time, which is all the
// events view needs.
func parseICalDate(value string) time.Time {
	value = strings.TrimSuffix(value, "Z")

	if len(value) >= 8 {
		year := atoi(value[0:4])
		month := atoi(value[4:6])
		day := atoi(value[6:8])

		if len(value) >= 15 && value[8] == 'T' {
			hour := atoi(value[9:11])
			minute := atoi(value[11:13])
			second := atoi(value[13:15])
			return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
