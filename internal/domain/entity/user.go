package entity

import "time"

// User is an account that owns contacts and authenticates with a username and password.
type User struct {
	ID             int64     // Database identifier.
	Username       string    // Unique login name, also the subject of access tokens.
	Email          string    // Unique email address used for confirmation and password reset.
	HashedPassword string    // Bcrypt digest of the password. Never the plaintext.
	Confirmed      bool      // Whether the email address has been confirmed.
	Role           Role      // Authorization role.
	Avatar         *string   // Public URL of the avatar image, nil when unset.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// UserSnapshot is the cacheable identity of a user. It deliberately omits the password digest.
type UserSnapshot struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Confirmed bool      `json:"confirmed"`
	Role      Role      `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns the cacheable identity of the user.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Confirmed: u.Confirmed,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// User rebuilds a user from the snapshot. HashedPassword stays empty.
func (s UserSnapshot) User() *User {
	return &User{
		ID:        s.ID,
		Username:  s.Username,
		Email:     s.Email,
		Confirmed: s.Confirmed,
		Role:      s.Role,
		Avatar:    s.Avatar,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
