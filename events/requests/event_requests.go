package requests

import "github.com/shopspring/decimal"

type CreateEventRequest struct {
	EventName        string `json:"event_name"`
	EventDate        string `json:"event_date"` // "YYYY-MM-DD"
	EventYear        int    `json:"event_year"`
	EventType        string `json:"event_type"`
	EventDescription string `json:"event_description"`
	Location         string `json:"location"`
	Time             string `json:"time"` // "HH:mm"
}

type CreateCategoryRequest struct {
	CategoryName        string `json:"category_name"`
	CategoryDescription string `json:"category_description"`
	FromAge             int    `json:"from_age"`
	ToAge               int    `json:"to_age"`
	EventID             uint   `json:"event_id"`
}

type ParticipationOptionRequest struct {
	EventID    uint            `json:"event_id"`
	CategoryID uint            `json:"category_id"`
	Km         decimal.Decimal `json:"km"`
	StartTime  string          `json:"starttime"`
}
