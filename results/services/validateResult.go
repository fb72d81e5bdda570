package services

import (
	"time"

	"marathon-backend/db/models"
	"marathon-backend/results/requests"
)

// ValidateNewResult checks a manually-entered result. Unlike the bulk
// import, the timing fields are not normalized here: the caller must send
// pre-formatted "HH:MM:SS" strings and anything else is rejected.
func ValidateNewResult(req *requests.AddResultRequest) string {
	if len(req.BibNumber) < 1 {
		return "Bib number is required."
	}
	if len(req.Name) < 3 {
		return "Name is required."
	}
	if !models.ValidGender(models.Gender(req.Gender)) {
		return "Invalid gender."
	}
	if req.RaceTime != nil && *req.RaceTime != "" && !IsStrictTime(*req.RaceTime) {
		return "Race time must be in HH:MM:SS format."
	}
	if req.StartTime != nil && *req.StartTime != "" && !IsStrictTime(*req.StartTime) {
		return "Start time must be in HH:MM:SS format."
	}
	if req.FinishTime != nil && *req.FinishTime != "" && !IsStrictTime(*req.FinishTime) {
		return "Finish time must be in HH:MM:SS format."
	}
	if req.EventID == 0 {
		return "Event ID is required."
	}
	return ""
}

// CanModifyThisYear gates result edits and deletes to the calendar year
// the record was entered in, regardless of caller privilege.
func CanModifyThisYear(enteredAt time.Time, now time.Time) bool {
	return enteredAt.Year() == now.Year()
}
