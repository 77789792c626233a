package models

import "time"

// User represents an account entity used for authentication and authorization.
// The password digest is never serialized: every response that carries a
// User goes through encoding/json, which skips the field.
type User struct {
	// UserID is the unique identifier of the user (UUID v7 string).
	UserID string `json:"_id"`

	// Username is the unique public handle. See validators.ValidateUsername.
	Username string `json:"username"`

	// Email is the unique login identifier used by sign-in.
	Email string `json:"email"`

	// Password holds the bcrypt digest. It is write-only from the API's
	// perspective and must never leave the process.
	Password string `json:"-"`

	// ProfilePicture is an optional avatar URL.
	ProfilePicture string `json:"profilePicture"`

	// IsAdmin grants admin-only operations (user listing, post creation) and
	// bypasses ownership checks.
	IsAdmin bool `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a partial update of a user record. Nil fields are left
// unchanged. Password must already be a digest.
type UserUpdate struct {
	Username       *string
	Password       *string
	ProfilePicture *string
}

// UsersPage is the response of the admin user listing.
type UsersPage struct {
	Users               []User `json:"users"`
	TotalUsersCount     int64  `json:"totalUsersCount"`
	LastMonthUsersCount int64  `json:"lastMonthUsersCount"`
}
