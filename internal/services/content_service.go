package services

import (
	"context"
	"time"

	"github.com/socialsync/socialdb/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ContentService implements validated persistence for ingested content.
type ContentService struct {
	db *gorm.DB
}

// NewContentService creates a ContentService over an established
// connection.
func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// CreateContentInput carries the raw fields for a new content item.
// ProcessedContent is a passthrough and defaults to null; Metadata holds
// the raw platform payload as-is.
type CreateContentInput struct {
	Type             models.ContentType `json:"type"`
	OriginalContent  string             `json:"originalContent"`
	ProcessedContent *string            `json:"processedContent"`
	SocialAccountID  string             `json:"socialAccountId"`
	Platform         models.Platform    `json:"platform"`
	PostedAt         time.Time          `json:"postedAt"`
	Metadata         datatypes.JSON     `json:"metadata"`
}

// ContentFilters are independently combinable find conditions.
type ContentFilters struct {
	Type            models.ContentType
	Platform        models.Platform
	SocialAccountID string
	PostedAfter     *time.Time
	PostedBefore    *time.Time
}

// Create persists a new content item. All schema constraints, including
// both enum fields, are enforced before the write.
func (s *ContentService) Create(ctx context.Context, input CreateContentInput) Result[*models.Content] {
	content := &models.Content{
		Type:             input.Type,
		OriginalContent:  input.OriginalContent,
		ProcessedContent: input.ProcessedContent,
		SocialAccountID:  input.SocialAccountID,
		Platform:         input.Platform,
		PostedAt:         input.PostedAt,
		Metadata:         input.Metadata,
	}

	if err := s.db.WithContext(ctx).Create(content).Error; err != nil {
		return failFrom[*models.Content](err,
			"Invalid content data provided",
			"Content already exists",
			"Content not found")
	}

	return ok(content)
}

// FindByID returns a single content item, failing fast on a malformed
// identifier.
func (s *ContentService) FindByID(ctx context.Context, id string) Result[*models.Content] {
	if !models.ValidID(id) {
		return fail[*models.Content](KindMalformedID, "Invalid content ID format")
	}

	var content models.Content
	if err := s.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return failFrom[*models.Content](err,
			"Invalid content data provided",
			"Content already exists",
			"Content not found")
	}

	return ok(&content)
}

// FindBySocialAccountID returns an account's content ordered by recency.
// The query runs over the (socialAccountId, platform, postedAt desc)
// composite index; on MySQL the index is hinted explicitly.
func (s *ContentService) FindBySocialAccountID(ctx context.Context, accountID string) Result[[]models.Content] {
	if !models.ValidID(accountID) {
		return fail[[]models.Content](KindMalformedID, "Invalid account ID format")
	}

	query := s.db.WithContext(ctx).
		Where("social_account_id = ?", accountID).
		Order("posted_at DESC")
	if name := s.db.Dialector.Name(); name == "mysql" || name == "mariadb" {
		query = query.Clauses(hints.UseIndex(models.ContentFeedIndex))
	}

	var contents []models.Content
	if err := query.Find(&contents).Error; err != nil {
		return fail[[]models.Content](KindUnknown, err.Error())
	}

	return ok(contents)
}

// FindAll returns content matching the filters; absent filters return all
// records.
func (s *ContentService) FindAll(ctx context.Context, filters ContentFilters) Result[[]models.Content] {
	query := s.db.WithContext(ctx).Model(&models.Content{})

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}
	if filters.SocialAccountID != "" {
		if !models.ValidID(filters.SocialAccountID) {
			return fail[[]models.Content](KindMalformedID, "Invalid account ID format in filters")
		}
		query = query.Where("social_account_id = ?", filters.SocialAccountID)
	}
	if filters.PostedAfter != nil {
		query = query.Where("posted_at >= ?", *filters.PostedAfter)
	}
	if filters.PostedBefore != nil {
		query = query.Where("posted_at <= ?", *filters.PostedBefore)
	}

	var contents []models.Content
	if err := query.Order("posted_at DESC").Find(&contents).Error; err != nil {
		return fail[[]models.Content](KindUnknown, err.Error())
	}

	return ok(contents)
}

// Delete removes a content item by identifier.
func (s *ContentService) Delete(ctx context.Context, id string) Result[*models.Content] {
	if !models.ValidID(id) {
		return fail[*models.Content](KindMalformedID, "Invalid content ID format")
	}

	res := s.db.WithContext(ctx).Delete(&models.Content{}, "id = ?", id)
	if res.Error != nil {
		return fail[*models.Content](KindUnknown, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fail[*models.Content](KindNotFound, "Content not found")
	}

	return ok[*models.Content](nil)
}
