package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is exposed via JSON as "id" and referenced by Profile.User.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login key of the account.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Avatar is the gravatar URL derived deterministically from Email
	// at registration time.
	Avatar string `json:"avatar"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Owner is the public projection of a User embedded into Profile documents:
// only the identifier, display name and avatar are exposed.
type Owner struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// PublicOwner returns the Owner projection of the user.
func (u User) PublicOwner() Owner {
	return Owner{ID: u.UserID, Name: u.Name, Avatar: u.Avatar}
}
