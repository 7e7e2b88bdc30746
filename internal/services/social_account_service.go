package services

import (
	"context"
	"strings"
	"time"

	"github.com/socialsync/socialdb/internal/models"
	"gorm.io/gorm"
)

// SocialAccountService implements validated CRUD over social accounts.
type SocialAccountService struct {
	db *gorm.DB
}

// NewSocialAccountService creates a SocialAccountService over an
// established connection.
func NewSocialAccountService(db *gorm.DB) *SocialAccountService {
	return &SocialAccountService{db: db}
}

// CreateSocialAccountInput carries the raw fields for a new account link.
type CreateSocialAccountInput struct {
	Platform  models.Platform `json:"platform"`
	AccountID string          `json:"accountId"`
	Username  string          `json:"username"`
	UserID    string          `json:"userId"`
}

// UpdateSocialAccountInput is a partial update; nil fields are untouched.
// The owning user reference is immutable.
type UpdateSocialAccountInput struct {
	Platform  *models.Platform `json:"platform"`
	AccountID *string          `json:"accountId"`
	Username  *string          `json:"username"`
}

// SocialAccountFilters are independently combinable find conditions.
type SocialAccountFilters struct {
	Platform          models.Platform
	Username          string
	UserID            string
	LastFetchedAfter  *time.Time
	LastFetchedBefore *time.Time
}

// Create persists a new account link after checking for an existing record
// with the same (userId, platform, accountId). The pre-check is advisory;
// the compound unique index settles races.
func (s *SocialAccountService) Create(ctx context.Context, input CreateSocialAccountInput) Result[*models.SocialAccount] {
	account := &models.SocialAccount{
		Platform:  input.Platform,
		AccountID: input.AccountID,
		Username:  input.Username,
		UserID:    input.UserID,
	}
	account.Normalize()

	var count int64
	err := s.db.WithContext(ctx).Model(&models.SocialAccount{}).
		Where("user_id = ? AND platform = ? AND account_id = ?",
			account.UserID, account.Platform, account.AccountID).
		Count(&count).Error
	if err != nil {
		return fail[*models.SocialAccount](KindUnknown, err.Error())
	}
	if count > 0 {
		return fail[*models.SocialAccount](KindDuplicate, "Social media account already exists")
	}

	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return failFrom[*models.SocialAccount](err,
			"Invalid social media account data provided",
			"Social media account already exists",
			"Social media account not found")
	}

	return ok(account)
}

// FindByID returns a single account, failing fast on a malformed
// identifier.
func (s *SocialAccountService) FindByID(ctx context.Context, id string) Result[*models.SocialAccount] {
	if !models.ValidID(id) {
		return fail[*models.SocialAccount](KindMalformedID, "Invalid account ID format")
	}

	var account models.SocialAccount
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return failFrom[*models.SocialAccount](err,
			"Invalid social media account data provided",
			"Social media account already exists",
			"Social media account not found")
	}

	return ok(&account)
}

// FindByUserID returns every account linked to a user. An empty result is
// a success, not a failure.
func (s *SocialAccountService) FindByUserID(ctx context.Context, userID string) Result[[]models.SocialAccount] {
	if !models.ValidID(userID) {
		return fail[[]models.SocialAccount](KindMalformedID, "Invalid user ID format")
	}

	var accounts []models.SocialAccount
	if err := s.db.WithContext(ctx).Find(&accounts, "user_id = ?", userID).Error; err != nil {
		return fail[[]models.SocialAccount](KindUnknown, err.Error())
	}

	return ok(accounts)
}

// FindAll returns accounts matching the filters; absent filters return all
// records.
func (s *SocialAccountService) FindAll(ctx context.Context, filters SocialAccountFilters) Result[[]models.SocialAccount] {
	query := s.db.WithContext(ctx).Model(&models.SocialAccount{})

	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}
	if filters.Username != "" {
		query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(filters.Username)+"%")
	}
	if filters.UserID != "" {
		if !models.ValidID(filters.UserID) {
			return fail[[]models.SocialAccount](KindMalformedID, "Invalid user ID format in filters")
		}
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.LastFetchedAfter != nil {
		query = query.Where("last_fetched >= ?", *filters.LastFetchedAfter)
	}
	if filters.LastFetchedBefore != nil {
		query = query.Where("last_fetched <= ?", *filters.LastFetchedBefore)
	}

	var accounts []models.SocialAccount
	if err := query.Find(&accounts).Error; err != nil {
		return fail[[]models.SocialAccount](KindUnknown, err.Error())
	}

	return ok(accounts)
}

// Update applies the provided fields only. When the partial touches
// platform or accountId, the compound uniqueness check is re-run against
// every other record before anything is written, mirroring Create.
func (s *SocialAccountService) Update(ctx context.Context, id string, input UpdateSocialAccountInput) Result[*models.SocialAccount] {
	if !models.ValidID(id) {
		return fail[*models.SocialAccount](KindMalformedID, "Invalid account ID format")
	}

	var account models.SocialAccount
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return failFrom[*models.SocialAccount](err,
			"Invalid update data provided",
			"Social media account already exists",
			"Social media account not found")
	}

	if input.Platform != nil {
		account.Platform = *input.Platform
	}
	if input.AccountID != nil {
		account.AccountID = *input.AccountID
	}
	if input.Username != nil {
		account.Username = *input.Username
	}

	if input.Platform != nil || input.AccountID != nil {
		var count int64
		err := s.db.WithContext(ctx).Model(&models.SocialAccount{}).
			Where("id <> ? AND user_id = ? AND platform = ? AND account_id = ?",
				account.ID, account.UserID, account.Platform, account.AccountID).
			Count(&count).Error
		if err != nil {
			return fail[*models.SocialAccount](KindUnknown, err.Error())
		}
		if count > 0 {
			return fail[*models.SocialAccount](KindDuplicate, "Social media account already exists")
		}
	}

	if err := s.db.WithContext(ctx).Save(&account).Error; err != nil {
		return failFrom[*models.SocialAccount](err,
			"Invalid update data provided",
			"Social media account already exists",
			"Social media account not found")
	}

	return ok(&account)
}

// UpdateLastFetched marks an account as freshly synced by setting
// lastFetched to the current time. Kept separate from Update because the
// sync workers call it on every fetch.
func (s *SocialAccountService) UpdateLastFetched(ctx context.Context, id string) Result[*models.SocialAccount] {
	if !models.ValidID(id) {
		return fail[*models.SocialAccount](KindMalformedID, "Invalid account ID format")
	}

	var account models.SocialAccount
	if err := s.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return failFrom[*models.SocialAccount](err,
			"Invalid update data provided",
			"Social media account already exists",
			"Social media account not found")
	}

	now := time.Now().UTC()
	account.LastFetched = &now
	if err := s.db.WithContext(ctx).Save(&account).Error; err != nil {
		return fail[*models.SocialAccount](KindUnknown, err.Error())
	}

	return ok(&account)
}

// Delete removes an account by identifier.
func (s *SocialAccountService) Delete(ctx context.Context, id string) Result[*models.SocialAccount] {
	if !models.ValidID(id) {
		return fail[*models.SocialAccount](KindMalformedID, "Invalid account ID format")
	}

	res := s.db.WithContext(ctx).Delete(&models.SocialAccount{}, "id = ?", id)
	if res.Error != nil {
		return fail[*models.SocialAccount](KindUnknown, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fail[*models.SocialAccount](KindNotFound, "Social media account not found")
	}

	return ok[*models.SocialAccount](nil)
}
