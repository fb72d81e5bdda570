package requests

// AddResultRequest carries a single manually-entered result. Field names
// mirror the public API: timing fields must already be "HH:MM:SS" strings
// here, unlike the lenient bulk-import path.
type AddResultRequest struct {
	RegistrationID *uint   `json:"registrationId"`
	BibNumber      string  `json:"bibno"`
	Name           string  `json:"name"`
	StartTime      *string `json:"startime"`
	FinishTime     *string `json:"finishtime"`
	RaceTime       *string `json:"raceTime"`
	CP1            *string `json:"cP1"`
	CP1Time        *string `json:"cP1Time"`
	CP2            *string `json:"cP2"`
	CP2Time        *string `json:"cP2Time"`
	CP3            *string `json:"cP3"`
	CP3Time        *string `json:"cP3Time"`
	CP4            *string `json:"cP4"`
	CP4Time        *string `json:"cP4Time"`
	CP5            *string `json:"cP5"`
	CP5Time        *string `json:"cP5Time"`
	Age            *int    `json:"age"`
	Gender         string  `json:"gender"`
	ParticipateIn  *string `json:"participatein"`
	CategoryID     *uint   `json:"categoryId"`
	City           *string `json:"city"`
	RFID1          *string `json:"rfid1"`
	RFID2          *string `json:"rfid2"`
	EventID        uint    `json:"eventId"`
	CStartTime     *string `json:"CStartTime"`
	CRaceTime      *string `json:"CRaceTime"`
	ImageID        *string `json:"imageid"`
}
