package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentFeedIndex orders an account's content by recency; the recency
// query hints at it explicitly on MySQL.
const ContentFeedIndex = "idx_content_feed"

// Content is an ingested item from a social account. ProcessedContent is a
// passthrough field, not computed here, and stays null until a processor
// fills it. Platform is a denormalized copy of the owning account's
// platform and is validated against the same enum independently.
type Content struct {
	ID               string         `gorm:"type:char(36);primaryKey" json:"id"`
	Type             ContentType    `gorm:"size:16;not null" json:"type"`
	OriginalContent  string         `gorm:"type:text;not null" json:"originalContent"`
	ProcessedContent *string        `gorm:"type:text" json:"processedContent"`
	SocialAccountID  string         `gorm:"type:char(36);not null;index:idx_content_feed,priority:1" json:"socialAccountId"`
	Platform         Platform       `gorm:"size:32;not null;index:idx_content_feed,priority:2" json:"platform"`
	PostedAt         time.Time      `gorm:"not null;index:idx_content_feed,priority:3,sort:desc" json:"postedAt"`
	Metadata         datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// TableName overrides the table name for Content
func (Content) TableName() string {
	return "contents"
}

// Validate checks the structural constraints for a content record.
func (c *Content) Validate() error {
	if !c.Type.Valid() {
		return &ValidationError{Entity: "content", Field: "type", Reason: "must be one of text, video"}
	}
	if c.OriginalContent == "" {
		return &ValidationError{Entity: "content", Field: "originalContent", Reason: "is required"}
	}
	if !ValidID(c.SocialAccountID) {
		return &ValidationError{Entity: "content", Field: "socialAccountId", Reason: "is not a well-formed reference"}
	}
	if !c.Platform.Valid() {
		return &ValidationError{Entity: "content", Field: "platform", Reason: "must be one of twitter, instagram, tiktok"}
	}
	if c.PostedAt.IsZero() {
		return &ValidationError{Entity: "content", Field: "postedAt", Reason: "is required"}
	}
	return nil
}

// BeforeCreate assigns an identifier when the caller did not provide one.
func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave validates on every persistence path.
func (c *Content) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}
