package user

import (
	"time"

	"github.com/google/uuid"
)

const RoleOwner = "owner"

// User is an authenticated account. The portfolio normally has
// exactly one, but nothing below this layer assumes that.
type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Role             string     `json:"role"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (u *User) IsConfirmed() bool {
	return u.EmailConfirmedAt != nil
}

// SessionUser is the public shape of an account, safe to return to
// the client.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func (u *User) ToSessionUser() SessionUser {
	return SessionUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Profile is the display profile attached to an account: name, job
// title and avatar shown on the site.
type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
