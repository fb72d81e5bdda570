package utils

import (
	"fmt"
	"os"
	"time"
)

// DateLocation is the application timezone, set once at startup.
var DateLocation *time.Location

// InitializeDateLocation loads the timezone named by APP_TIMEZONE (UTC when unset).
func InitializeDateLocation() error {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		name = "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	DateLocation = loc
	return nil
}

// Today returns the current time in the application timezone.
func Today() time.Time {
	if DateLocation == nil {
		return time.Now()
	}
	return time.Now().In(DateLocation)
}
