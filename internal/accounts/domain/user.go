package domain

import "time"

// User is a registered account. The id is assigned by the storage layer
// (AUTOINCREMENT / BIGSERIAL); the email is unique across all users.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // argon2id PHC encoded, never the plaintext
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser is the payload accepted by the users repository when creating an
// account. The password has already been hashed by the service layer; stores
// never see a plaintext credential.
type NewUser struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}
