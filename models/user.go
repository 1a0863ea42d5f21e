package models

import "time"

// User represents a server-side account used for authentication.
// PasswordHash must never leave the server process.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique sign-in identifier and is stamped onto every
	// document the user creates.
	Email string `json:"email"`

	// Password carries the plaintext password on the register/login request
	// only. It is hashed immediately and never persisted or echoed back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal is the authenticated identity as seen by the client: the opaque
// user identifier plus the sign-in email.
type Principal struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}
