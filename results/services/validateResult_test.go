package services

import (
	"testing"
	"time"

	"marathon-backend/results/requests"
	"marathon-backend/utils"
)

func validAddRequest() *requests.AddResultRequest {
	return &requests.AddResultRequest{
		BibNumber: "101",
		Name:      "Asha",
		Gender:    "Female",
		EventID:   1,
	}
}

func TestValidateNewResult(t *testing.T) {
	tests := []struct {
		mutate   func(*requests.AddResultRequest)
		expected string
		desc     string
	}{
		{func(r *requests.AddResultRequest) {}, "", "minimal valid request"},
		{func(r *requests.AddResultRequest) { r.BibNumber = "" }, "Bib number is required.", "missing bib"},
		{func(r *requests.AddResultRequest) { r.Name = "Al" }, "Name is required.", "name too short"},
		{func(r *requests.AddResultRequest) { r.Gender = "female" }, "Invalid gender.", "lowercase gender"},
		{func(r *requests.AddResultRequest) { r.EventID = 0 }, "Event ID is required.", "missing event"},
		{
			func(r *requests.AddResultRequest) { r.RaceTime = utils.StringPtr("9:5:7") },
			"Race time must be in HH:MM:SS format.",
			"unpadded race time rejected on the manual path",
		},
		{
			func(r *requests.AddResultRequest) { r.StartTime = utils.StringPtr("0.5") },
			"Start time must be in HH:MM:SS format.",
			"fraction-of-day rejected on the manual path",
		},
		{
			func(r *requests.AddResultRequest) { r.FinishTime = utils.StringPtr("bad") },
			"Finish time must be in HH:MM:SS format.",
			"garbage finish time",
		},
		{
			func(r *requests.AddResultRequest) { r.RaceTime = utils.StringPtr("02:15:33") },
			"",
			"strict race time accepted",
		},
		{
			func(r *requests.AddResultRequest) { r.RaceTime = utils.StringPtr("") },
			"",
			"empty string treated as absent",
		},
	}

	for _, test := range tests {
		req := validAddRequest()
		test.mutate(req)
		if got := ValidateNewResult(req); got != test.expected {
			t.Errorf("%s: got %q, expected %q", test.desc, got, test.expected)
		}
	}
}

func TestCanModifyThisYear(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		enteredAt time.Time
		expected  bool
		desc      string
	}{
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true, "same year, January"},
		{time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC), true, "same year, December"},
		{time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), false, "previous year"},
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), false, "future year"},
	}

	for _, test := range tests {
		if got := CanModifyThisYear(test.enteredAt, now); got != test.expected {
			t.Errorf("%s: got %v, expected %v", test.desc, got, test.expected)
		}
	}
}
