package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/socialsync/socialdb/internal/models"
	"github.com/socialsync/socialdb/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing. The
// TranslateError option matches the production connection so duplicate-key
// failures surface the same way in both.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.SocialAccount{},
		&models.Content{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// mustCreateUser creates a user through the service and fails the test on
// any error.
func mustCreateUser(t *testing.T, svc *services.UserService, username, email string) *models.User {
	t.Helper()
	res := svc.Create(context.Background(), services.CreateUserInput{
		Username: username,
		Email:    email,
		Password: "secret1",
	})
	if !res.Success {
		t.Fatalf("Failed to create user %q: %s", username, res.Error)
	}
	return res.Data
}

// mustCreateAccount creates a social account through the service and fails
// the test on any error.
func mustCreateAccount(t *testing.T, svc *services.SocialAccountService, userID string, platform models.Platform, accountID string) *models.SocialAccount {
	t.Helper()
	res := svc.Create(context.Background(), services.CreateSocialAccountInput{
		Platform:  platform,
		AccountID: accountID,
		Username:  "handle",
		UserID:    userID,
	})
	if !res.Success {
		t.Fatalf("Failed to create account %s/%s: %s", platform, accountID, res.Error)
	}
	return res.Data
}

// mustCreateContent creates a content item through the service and fails
// the test on any error.
func mustCreateContent(t *testing.T, svc *services.ContentService, accountID string, postedAt time.Time) *models.Content {
	t.Helper()
	res := svc.Create(context.Background(), services.CreateContentInput{
		Type:            models.ContentTypeText,
		OriginalContent: "post body",
		SocialAccountID: accountID,
		Platform:        models.PlatformTwitter,
		PostedAt:        postedAt,
	})
	if !res.Success {
		t.Fatalf("Failed to create content: %s", res.Error)
	}
	return res.Data
}
