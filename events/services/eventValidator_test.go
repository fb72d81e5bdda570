package services

import (
	"testing"
	"time"

	"marathon-backend/events/requests"

	"github.com/shopspring/decimal"
)

var validatorNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func validEventRequest() *requests.CreateEventRequest {
	return &requests.CreateEventRequest{
		EventName:        "City Marathon",
		EventDate:        "2026-11-15",
		EventYear:        2026,
		EventType:        "Marathon",
		EventDescription: "Annual city marathon with full and half distances.",
		Location:         "Riverside Park",
		Time:             "06:30",
	}
}

func TestValidateNewEvent(t *testing.T) {
	tests := []struct {
		mutate   func(*requests.CreateEventRequest)
		expected string
		desc     string
	}{
		{func(r *requests.CreateEventRequest) {}, "", "valid request"},
		{func(r *requests.CreateEventRequest) { r.EventName = "Ab" }, "Event name must be between 3 and 100 characters.", "name too short"},
		{func(r *requests.CreateEventRequest) { r.EventDate = "15-11-2026" }, "Event date must be in YYYY-MM-DD format.", "wrong date format"},
		{func(r *requests.CreateEventRequest) { r.EventDate = "2025-11-15"; r.EventYear = 2025 }, "Event date must be in the future.", "past date"},
		{func(r *requests.CreateEventRequest) { r.EventYear = 2040; r.EventDate = "2040-11-15" }, "Event year must be within the next ten years.", "year too far out"},
		{func(r *requests.CreateEventRequest) { r.EventYear = 2027 }, "Event year must match the event date.", "year/date mismatch"},
		{func(r *requests.CreateEventRequest) { r.EventDescription = "Short." }, "Event description must be between 10 and 500 characters.", "description too short"},
		{func(r *requests.CreateEventRequest) { r.EventType = " " }, "Event type is required.", "blank type"},
		{func(r *requests.CreateEventRequest) { r.Location = "" }, "Location is required.", "missing location"},
		{func(r *requests.CreateEventRequest) { r.Time = "6:30 AM" }, "Time must be in HH:mm format.", "12-hour time"},
		{func(r *requests.CreateEventRequest) { r.Time = "25:00" }, "Time must be in HH:mm format.", "out-of-range hour"},
	}

	for _, test := range tests {
		req := validEventRequest()
		test.mutate(req)
		if got := ValidateNewEvent(req, validatorNow); got != test.expected {
			t.Errorf("%s: got %q, expected %q", test.desc, got, test.expected)
		}
	}
}

func TestValidateNewCategory(t *testing.T) {
	valid := &requests.CreateCategoryRequest{
		CategoryName: "Veteran",
		FromAge:      45,
		ToAge:        99,
		EventID:      1,
	}
	if got := ValidateNewCategory(valid); got != "" {
		t.Errorf("valid category rejected: %q", got)
	}

	inverted := &requests.CreateCategoryRequest{CategoryName: "Open", FromAge: 50, ToAge: 20, EventID: 1}
	if got := ValidateNewCategory(inverted); got != "Invalid age range." {
		t.Errorf("inverted range: got %q", got)
	}

	noEvent := &requests.CreateCategoryRequest{CategoryName: "Open", EventID: 0}
	if got := ValidateNewCategory(noEvent); got != "Event ID is required." {
		t.Errorf("missing event: got %q", got)
	}
}

func TestValidateParticipationOption(t *testing.T) {
	valid := &requests.ParticipationOptionRequest{
		EventID:    1,
		CategoryID: 2,
		Km:         decimal.NewFromFloat(21.1),
		StartTime:  "06:45",
	}
	if got := ValidateParticipationOption(valid); got != "" {
		t.Errorf("valid option rejected: %q", got)
	}

	zeroKm := &requests.ParticipationOptionRequest{EventID: 1, CategoryID: 2}
	if got := ValidateParticipationOption(zeroKm); got != "Distance must be greater than zero." {
		t.Errorf("zero distance: got %q", got)
	}

	negative := &requests.ParticipationOptionRequest{EventID: 1, CategoryID: 2, Km: decimal.NewFromInt(-5)}
	if got := ValidateParticipationOption(negative); got != "Distance must be greater than zero." {
		t.Errorf("negative distance: got %q", got)
	}

	badTime := &requests.ParticipationOptionRequest{EventID: 1, CategoryID: 2, Km: decimal.NewFromInt(5), StartTime: "6:45 AM"}
	if got := ValidateParticipationOption(badTime); got != "Start time must be in HH:mm format." {
		t.Errorf("bad start time: got %q", got)
	}
}
