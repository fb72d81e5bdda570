package token

import "time"

// Maker is the contract for anything that can create and verify session
// tokens. The rest of the application only depends on this interface, so
// the token format can change without touching handlers.
type Maker interface {
	CreateToken(email string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
