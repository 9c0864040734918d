package models

import (
	"time"

	"github.com/google/uuid"
)

// MemberDB represents a member record in the database
type MemberDB struct {
	MemberID     uuid.UUID `json:"id" db:"member_id"`           // Primary key
	Username     string    `json:"username" db:"username"`      // Unique username, case-insensitive
	Email        string    `json:"email" db:"email"`            // Unique email, case-insensitive
	Phone        *string   `json:"phone" db:"phone"`            // Optional phone
	About        string    `json:"about" db:"about"`            // Free-form description
	JoinedAt     time.Time `json:"joined_at" db:"joined_at"`    // Registration timestamp, immutable
	PasswordHash string    `json:"-" db:"password_hash"`        // Bcrypt hash, never serialized
}

// MemberPublic is the non-sensitive view of a member embedded in API responses.
type MemberPublic struct {
	MemberID uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone"`
	About    string    `json:"about"`
	JoinedAt time.Time `json:"joined_at"`
}

// Public returns the member's public view.
func (m *MemberDB) Public() MemberPublic {
	return MemberPublic{
		MemberID: m.MemberID,
		Username: m.Username,
		Email:    m.Email,
		Phone:    m.Phone,
		About:    m.About,
		JoinedAt: m.JoinedAt,
	}
}

// ProfileUpdate is a partial update of a member's own profile.
// Nil fields are left unchanged; username and joined_at are immutable.
type ProfileUpdate struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	About *string `json:"about"`
}
