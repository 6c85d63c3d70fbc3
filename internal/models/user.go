package models

import "time"

// User represents a registered account.
//
// PasswordHash serializes as "pass": the public user listing includes it,
// matching the wire format of the original service. Handlers that must not
// leak it blank the field before encoding.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	PasswordHash string    `json:"pass,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
