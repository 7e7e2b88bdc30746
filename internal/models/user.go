package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account owner. Username and email are each globally
// unique; the unique indexes are the actual invariant keepers, service-level
// duplicate checks only exist for friendlier messages.
//
// The password column is never serialized (json:"-"); service return paths
// additionally zero the field before a record leaves the layer.
type User struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex:idx_users_username" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// Normalize applies the schema field transforms: username and email are
// trimmed, email is lowercased.
func (u *User) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Validate checks the structural constraints for a user record.
func (u *User) Validate() error {
	if len(u.Username) < 3 {
		return &ValidationError{Entity: "user", Field: "username", Reason: "must be at least 3 characters"}
	}
	if u.Email == "" {
		return &ValidationError{Entity: "user", Field: "email", Reason: "is required"}
	}
	if len(u.Password) < 6 {
		return &ValidationError{Entity: "user", Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}

// BeforeCreate assigns an identifier when the caller did not provide one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave runs on create and update so no call path can persist a
// record that violates the schema. Partial writes never happen: the save
// is aborted before it reaches the storage engine.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Normalize()
	return u.Validate()
}

// Sanitize clears the password on a record about to leave the service
// layer and returns the same record for chaining.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}
