// Package models defines the persistent entities of the TeyvatDex server.
package models

import "time"

// User is an account row. PasswordHash holds a bcrypt hash; the plaintext
// password never reaches this struct.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
