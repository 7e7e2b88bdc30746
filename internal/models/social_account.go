package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialAccount links a user to one identity on one platform. The
// (userId, platform, accountId) triple is unique: one account per
// platform-identity per user.
//
// UserID is an indexed reference, not a foreign key constraint. The store
// performs no cascading deletes; deleting a user leaves its accounts
// behind (known gap, kept deliberately).
type SocialAccount struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	Platform    Platform   `gorm:"size:32;not null;index:idx_account_identity,unique,priority:2" json:"platform"`
	AccountID   string     `gorm:"size:255;not null;index:idx_account_identity,unique,priority:3" json:"accountId"`
	Username    string     `gorm:"size:255;not null" json:"username"`
	UserID      string     `gorm:"type:char(36);not null;index:idx_account_identity,unique,priority:1" json:"userId"`
	LastFetched *time.Time `json:"lastFetched"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for SocialAccount
func (SocialAccount) TableName() string {
	return "social_accounts"
}

// Normalize trims the display username.
func (a *SocialAccount) Normalize() {
	a.Username = strings.TrimSpace(a.Username)
}

// Validate checks the structural constraints for a social account record.
func (a *SocialAccount) Validate() error {
	if !a.Platform.Valid() {
		return &ValidationError{Entity: "socialAccount", Field: "platform", Reason: "must be one of twitter, instagram, tiktok"}
	}
	if a.AccountID == "" {
		return &ValidationError{Entity: "socialAccount", Field: "accountId", Reason: "is required"}
	}
	if a.Username == "" {
		return &ValidationError{Entity: "socialAccount", Field: "username", Reason: "is required"}
	}
	if !ValidID(a.UserID) {
		return &ValidationError{Entity: "socialAccount", Field: "userId", Reason: "is not a well-formed reference"}
	}
	return nil
}

// BeforeCreate assigns an identifier when the caller did not provide one.
func (a *SocialAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave normalizes and validates on every persistence path.
func (a *SocialAccount) BeforeSave(tx *gorm.DB) error {
	a.Normalize()
	return a.Validate()
}
