package services

import (
	"errors"
	"testing"

	"marathon-backend/db/models"
	"marathon-backend/registrations/requests"
)

type fakeRegistrationStore struct {
	registered map[string]map[uint]bool // enteredBy -> eventID
	created    []*models.Registration
	nextID     uint
	createErr  error
	patchErr   error
	patched    map[uint]string
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{
		registered: make(map[string]map[uint]bool),
		patched:    make(map[uint]string),
		nextID:     41,
	}
}

func (s *fakeRegistrationStore) HasRegistrationForEvent(enteredBy string, eventID uint) (bool, error) {
	return s.registered[enteredBy][eventID], nil
}

func (s *fakeRegistrationStore) CreateRegistration(registration *models.Registration) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	registration.ID = s.nextID
	s.created = append(s.created, registration)
	if s.registered[registration.EnteredBy] == nil {
		s.registered[registration.EnteredBy] = make(map[uint]bool)
	}
	s.registered[registration.EnteredBy][registration.EventID] = true
	return nil
}

func (s *fakeRegistrationStore) SetBibNumber(id uint, bibNumber string) error {
	if s.patchErr != nil {
		return s.patchErr
	}
	s.patched[id] = bibNumber
	return nil
}

func validRegisterRequest() *requests.RegisterRequest {
	return &requests.RegisterRequest{
		Name:          "Rahul Sharma",
		Gender:        "Male",
		DateOfBirth:   "1990-04-12",
		City:          "Pune",
		Email:         "rahul@example.com",
		ContactNo:     "9876543210",
		ParticipateIn: "21.1",
		EventID:       7,
	}
}

func TestDeriveBibNumber(t *testing.T) {
	tests := []struct {
		name     string
		id       uint
		expected string
	}{
		{"Rahul", 42, "rahu42"},
		{"Asha", 7, "asha7"},
		{"Jo", 100, "jo100"},
		{"", 5, "5"},
		{"MARATHONER", 1, "mara1"},
	}

	for _, test := range tests {
		if got := DeriveBibNumber(test.name, test.id); got != test.expected {
			t.Errorf("DeriveBibNumber(%q, %d) = %q, expected %q", test.name, test.id, got, test.expected)
		}
	}
}

func TestRegister_AssignsDerivedBib(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := &RegistrationService{Store: store}

	registration, err := svc.Register(validRegisterRequest(), "Admin User")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedBib := "rahu42"
	if registration.BibNumber == nil || *registration.BibNumber != expectedBib {
		t.Errorf("bib = %v, expected %q", registration.BibNumber, expectedBib)
	}
	if store.patched[registration.ID] != expectedBib {
		t.Errorf("stored bib = %q, expected the patch to land", store.patched[registration.ID])
	}
	if registration.EnteredBy != "Admin User" {
		t.Errorf("entered by = %q, expected the submitter's full name", registration.EnteredBy)
	}
	if !registration.IsActive {
		t.Error("new registrations should be active")
	}
}

// The duplicate check keys on who submitted the form plus the event, not
// on the registrant's details.
func TestRegister_DuplicatePerSubmitterAndEvent(t *testing.T) {
	store := newFakeRegistrationStore()
	svc := &RegistrationService{Store: store}

	if _, err := svc.Register(validRegisterRequest(), "Asha"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Same submitter, same event: rejected even with different details
	second := validRegisterRequest()
	second.Name = "Someone Else"
	second.Email = "else@example.com"
	if _, err := svc.Register(second, "Asha"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Different submitter, same event: allowed
	if _, err := svc.Register(validRegisterRequest(), "Vikram"); err != nil {
		t.Errorf("different submitter rejected: %v", err)
	}

	// Same submitter, different event: allowed
	third := validRegisterRequest()
	third.EventID = 8
	if _, err := svc.Register(third, "Asha"); err != nil {
		t.Errorf("different event rejected: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		mutate   func(*requests.RegisterRequest)
		expected string
		desc     string
	}{
		{func(r *requests.RegisterRequest) { r.Name = "Al" }, "Name is required.", "short name"},
		{func(r *requests.RegisterRequest) { r.Gender = "man" }, "Invalid gender.", "bad gender"},
		{func(r *requests.RegisterRequest) { r.DateOfBirth = "12-04-1990" }, "Date of birth must be in YYYY-MM-DD format.", "wrong date order"},
		{func(r *requests.RegisterRequest) { r.DateOfBirth = "1990-4-12" }, "Date of birth must be in YYYY-MM-DD format.", "unpadded date"},
		{func(r *requests.RegisterRequest) { r.Email = "not-an-email" }, "Invalid email address.", "missing at sign"},
		{func(r *requests.RegisterRequest) { r.Email = "a@b" }, "Invalid email address.", "missing domain dot"},
		{func(r *requests.RegisterRequest) { r.ContactNo = " " }, "Contact number is required.", "blank contact"},
		{func(r *requests.RegisterRequest) { r.ParticipateIn = "" }, "Participation distance is required.", "no distance"},
		{func(r *requests.RegisterRequest) { r.EventID = 0 }, "Event ID is required.", "no event"},
	}

	for _, test := range tests {
		store := newFakeRegistrationStore()
		svc := &RegistrationService{Store: store}

		req := validRegisterRequest()
		test.mutate(req)

		_, err := svc.Register(req, "Asha")
		if err == nil || err.Error() != test.expected {
			t.Errorf("%s: got %v, expected %q", test.desc, err, test.expected)
		}
		if len(store.created) != 0 {
			t.Errorf("%s: invalid request reached the store", test.desc)
		}
	}
}

// The insert and the bib patch are separate statements. A patch failure
// surfaces as an error but the inserted row stays behind, bib-less.
func TestRegister_BibPatchFailureLeavesRow(t *testing.T) {
	store := newFakeRegistrationStore()
	store.patchErr = errors.New("connection reset")
	svc := &RegistrationService{Store: store}

	_, err := svc.Register(validRegisterRequest(), "Asha")
	if err == nil {
		t.Fatal("expected an error when the bib patch fails")
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d rows, expected the insert to have landed", len(store.created))
	}
	if store.created[0].BibNumber != nil {
		t.Errorf("bib = %q, expected the row to stay bib-less", *store.created[0].BibNumber)
	}
}
