package calendar

import (
	"time"

	"github.com/brightwood-pta/directorybackend/models"
)

// MockEvents generates placeholder school events around the given date. Used
// as the last-resort fallback when the district feed is unreachable, so the
// calendar view still has something to render.
func MockEvents(now time.Time) []models.CalendarEvent {
	year, month, _ := now.Date()
	day := now.Day()
	loc := now.Location()

	at := func(y int, m time.Month, d, hour, min int) time.Time {
		return time.Date(y, m, d, hour, min, 0, 0, loc)
	}

	nextMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)

	return []models.CalendarEvent{
		{
			ID:          "mock-1",
			Title:       "School Board Meeting",
			Description: "Monthly school board meeting to discuss district policies and updates.",
			Start:       at(year, month, 15, 18, 30),
			End:         at(year, month, 15, 20, 0),
			Location:    "District Administration Building",
		},
		{
			ID:          "mock-2",
			Title:       "Teacher Professional Development Day",
			Description: "No school for students. Teachers will attend professional development workshops.",
			Start:       at(year, month, 10, 0, 0),
			End:         at(year, month, 10, 0, 0),
			Location:    "All Schools",
			AllDay:      true,
		},
		{
			ID:          "mock-3",
			Title:       "Spring Break",
			Description: "No school for students and staff.",
			Start:       at(year, month, 20, 0, 0),
			End:         at(year, month, 27, 0, 0),
			AllDay:      true,
		},
		{
			ID:          "mock-4",
			Title:       "Parent-Teacher Conferences",
			Description: "Schedule meetings with your child's teachers to discuss progress.",
			Start:       at(year, month, day+2, 15, 0),
			End:         at(year, month, day+2, 19, 0),
			Location:    "All Schools",
		},
		{
			ID:          "mock-5",
			Title:       "Early Dismissal",
			Description: "Students will be dismissed at 1:00 PM.",
			Start:       at(year, month, day+5, 13, 0),
			End:         at(year, month, day+5, 13, 0),
			Location:    "All Schools",
		},
		{
			ID:          "mock-6",
			Title:       "Field Day",
			Description: "Annual outdoor activities and games for students.",
			Start:       at(nextMonth.Year(), nextMonth.Month(), 5, 9, 0),
			End:         at(nextMonth.Year(), nextMonth.Month(), 5, 14, 0),
			Location:    "School Athletic Fields",
		},
		{
			ID:          "mock-7",
			Title:       "PTA Meeting",
			Description: "Monthly Parent-Teacher Association meeting to discuss school activities and fundraising.",
			Start:       at(year, month, 8, 19, 0),
			End:         at(year, month, 8, 20, 30),
			Location:    "School Library",
		},
	}
}
