package services

import (
	"strings"
	"time"

	"marathon-backend/events/requests"
)

// ValidateNewEvent checks an event creation request and returns an empty
// string when it is acceptable. The date must lie in the future and the
// stated year must both match the date and fall within the next decade.
func ValidateNewEvent(req *requests.CreateEventRequest, now time.Time) string {
	if l := len(strings.TrimSpace(req.EventName)); l < 3 || l > 100 {
		return "Event name must be between 3 and 100 characters."
	}

	date, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return "Event date must be in YYYY-MM-DD format."
	}
	if !date.After(now) {
		return "Event date must be in the future."
	}

	if req.EventYear < now.Year() || req.EventYear > now.Year()+10 {
		return "Event year must be within the next ten years."
	}
	if req.EventYear != date.Year() {
		return "Event year must match the event date."
	}

	if l := len(strings.TrimSpace(req.EventDescription)); l < 10 || l > 500 {
		return "Event description must be between 10 and 500 characters."
	}
	if strings.TrimSpace(req.EventType) == "" {
		return "Event type is required."
	}
	if strings.TrimSpace(req.Location) == "" {
		return "Location is required."
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return "Time must be in HH:mm format."
	}

	return ""
}

// ValidateNewCategory checks a category creation request.
func ValidateNewCategory(req *requests.CreateCategoryRequest) string {
	if len(strings.TrimSpace(req.CategoryName)) < 3 {
		return "Category name is required."
	}
	if req.FromAge < 0 || req.ToAge < 0 || (req.ToAge != 0 && req.FromAge > req.ToAge) {
		return "Invalid age range."
	}
	if req.EventID == 0 {
		return "Event ID is required."
	}
	return ""
}

// ValidateParticipationOption checks a distance option request. Start
// time is optional but must be well-formed when present.
func ValidateParticipationOption(req *requests.ParticipationOptionRequest) string {
	if req.EventID == 0 {
		return "Event ID is required."
	}
	if req.CategoryID == 0 {
		return "Category ID is required."
	}
	if req.Km.IsZero() || req.Km.IsNegative() {
		return "Distance must be greater than zero."
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return "Start time must be in HH:mm format."
		}
	}
	return ""
}
