package identity

import (
	"strings"

	"github.com/dailydiet/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// User is a person tracking their diet. A user is created on first contact
// and is immutable afterwards, except for session token backfill.
type User struct {
	shared.BaseEntity
	SessionID *uuid.UUID `gorm:"type:uuid;index" json:"session_id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null" json:"email"`
}

// TableName specifies the database table name
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user associated with the given session token
func NewUser(name, email string, sessionID uuid.UUID) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, shared.NewValidationError("name is required")
	}
	if email == "" {
		return nil, shared.NewValidationError("email is required")
	}
	if sessionID == uuid.Nil {
		return nil, shared.NewValidationError("session token is required")
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		SessionID:  &sessionID,
		Name:       name,
		Email:      email,
	}, nil
}

// AttachSession backfills the session token for a user created without one
func (u *User) AttachSession(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return shared.NewValidationError("session token is required")
	}
	u.SessionID = &sessionID
	return nil
}
