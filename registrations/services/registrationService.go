package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"marathon-backend/db/models"
	"marathon-backend/registrations/requests"
	"marathon-backend/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrAlreadyRegistered means the submitter already holds a registration
// for the requested event.
var ErrAlreadyRegistered = errors.New("You are already registered for this event.")

// ValidateRegistration returns an empty string when the request is
// acceptable, otherwise the message to send back.
func ValidateRegistration(req *requests.RegisterRequest) string {
	if len(strings.TrimSpace(req.Name)) < 3 {
		return "Name is required."
	}
	if !models.ValidGender(models.Gender(req.Gender)) {
		return "Invalid gender."
	}
	if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		return "Date of birth must be in YYYY-MM-DD format."
	}
	if strings.TrimSpace(req.City) == "" {
		return "City is required."
	}
	if !emailPattern.MatchString(req.Email) {
		return "Invalid email address."
	}
	if strings.TrimSpace(req.ContactNo) == "" {
		return "Contact number is required."
	}
	if strings.TrimSpace(req.ParticipateIn) == "" {
		return "Participation distance is required."
	}
	if req.EventID == 0 {
		return "Event ID is required."
	}
	return ""
}

// DeriveBibNumber builds the bib from the first four letters of the name
// lowercased plus the generated registration identifier, e.g. "rahu42".
// Names shorter than four characters just use what is there.
func DeriveBibNumber(name string, id uint) string {
	runes := []rune(name)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return strings.ToLower(string(runes)) + fmt.Sprint(id)
}

// RegistrationStore is the persistence surface the workflow needs.
type RegistrationStore interface {
	HasRegistrationForEvent(enteredBy string, eventID uint) (bool, error)
	CreateRegistration(registration *models.Registration) error
	SetBibNumber(id uint, bibNumber string) error
}

type RegistrationService struct {
	Store RegistrationStore
}

// Register runs the signup workflow: duplicate check on (submitter, event),
// insert, then a second statement patching the derived bib onto the new
// row. The insert and the patch are not wrapped in a transaction; a patch
// failure leaves a bib-less registration behind and is reported as such.
func (s *RegistrationService) Register(req *requests.RegisterRequest, enteredBy string) (*models.Registration, error) {
	if msg := ValidateRegistration(req); msg != "" {
		return nil, errors.New(msg)
	}

	exists, err := s.Store.HasRegistrationForEvent(enteredBy, req.EventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	registration := models.Registration{
		Name:             req.Name,
		Gender:           models.Gender(req.Gender),
		DateOfBirth:      req.DateOfBirth,
		City:             req.City,
		Email:            req.Email,
		ContactNo:        req.ContactNo,
		EmergencyNo:      req.EmergencyNo,
		TshirtSize:       req.TshirtSize,
		BookingReference: req.BookingReference,
		ParticipateIn:    req.ParticipateIn,
		EventID:          req.EventID,
		CategoryID:       req.CategoryID,
		IsActive:         true,
		EnteredBy:        enteredBy,
		EnteredAt:        utils.Today(),
	}

	if err := s.Store.CreateRegistration(&registration); err != nil {
		return nil, err
	}

	bib := DeriveBibNumber(registration.Name, registration.ID)
	if err := s.Store.SetBibNumber(registration.ID, bib); err != nil {
		return nil, fmt.Errorf("registration %d created but bib assignment failed: %w", registration.ID, err)
	}
	registration.BibNumber = &bib

	return &registration, nil
}
