package requests

// RegisterRequest carries a signup for an event. Field names mirror the
// public API.
type RegisterRequest struct {
	Name             string  `json:"name"`
	Gender           string  `json:"gender"`
	DateOfBirth      string  `json:"dob"`
	City             string  `json:"city"`
	Email            string  `json:"email"`
	ContactNo        string  `json:"contactno"`
	EmergencyNo      *string `json:"emergencyno"`
	TshirtSize       *string `json:"tshirtsize"`
	BookingReference *string `json:"bookingreference"`
	ParticipateIn    string  `json:"participatein"`
	EventID          uint    `json:"event_id"`
	CategoryID       *uint   `json:"category_id"`
}

// UpdateRegistrationRequest addresses event and category by name, the way
// the admin screens submit them.
type UpdateRegistrationRequest struct {
	Name             string  `json:"name"`
	Gender           string  `json:"gender"`
	DateOfBirth      string  `json:"dob"`
	City             string  `json:"city"`
	Email            string  `json:"email"`
	ContactNo        string  `json:"contactno"`
	EmergencyNo      *string `json:"emergencyno"`
	TshirtSize       *string `json:"tshirtsize"`
	BookingReference *string `json:"bookingreference"`
	ParticipateIn    string  `json:"participatein"`
	EventName        string  `json:"event_name"`
	CategoryName     *string `json:"category_name"`
}
