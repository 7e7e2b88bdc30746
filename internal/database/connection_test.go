package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/socialsync/socialdb/internal/config"
	"github.com/socialsync/socialdb/internal/database"
	"github.com/socialsync/socialdb/internal/models"
	"github.com/socialsync/socialdb/internal/services"
	"github.com/socialsync/socialdb/internal/testdb"
	"gorm.io/gorm"
)

// TestMySQLConnection exercises the real connection path against a MySQL
// container: migration, unique-index enforcement, and error translation.
func TestMySQLConnection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container, err := testdb.Start(ctx)
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}
	defer func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}()

	cfg := &config.Config{
		DBType:            "mysql",
		DBHost:            container.Host,
		DBPort:            container.Port,
		DBDatabase:        container.Database(),
		DBUser:            "root",
		DBPassword:        container.Password(),
		DBConnectionLimit: 5,
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	// The unique index, not the service pre-check, is what actually
	// enforces uniqueness; write directly to prove it holds.
	first := models.User{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	dup := models.User{Username: "alice", Email: "other@example.com", Password: "secret1"}
	err = db.Create(&dup).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("Expected translated duplicate-key error, got %v", err)
	}

	// The compound account index holds too
	userID := uuid.NewString()
	acctA := models.SocialAccount{Platform: models.PlatformTwitter, AccountID: "ext-1", Username: "h", UserID: userID}
	if err := db.Create(&acctA).Error; err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	acctB := models.SocialAccount{Platform: models.PlatformTwitter, AccountID: "ext-1", Username: "h2", UserID: userID}
	err = db.Create(&acctB).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("Expected translated duplicate-key error, got %v", err)
	}

	// Service layer converts the race-path failure into the friendly message
	users := services.NewUserService(db)
	res := users.Create(ctx, services.CreateUserInput{
		Username: "alice", Email: "third@example.com", Password: "secret1",
	})
	if res.Success || res.Error != "Username or email already exists" {
		t.Errorf("Expected duplicate rejection, got %+v", res)
	}

	// The MySQL-hinted feed query runs against the composite index
	content := services.NewContentService(db)
	item := content.Create(ctx, services.CreateContentInput{
		Type:            models.ContentTypeText,
		OriginalContent: "hello",
		SocialAccountID: acctA.ID,
		Platform:        models.PlatformTwitter,
		PostedAt:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	})
	if !item.Success {
		t.Fatalf("Failed to create content: %s", item.Error)
	}
	feed := content.FindBySocialAccountID(ctx, acctA.ID)
	if !feed.Success || len(feed.Data) != 1 {
		t.Errorf("Expected 1 feed item, got %+v", feed)
	}
}

// TestConnectUnknownType tests rejection of an unsupported database type.
func TestConnectUnknownType(t *testing.T) {
	_, err := database.Connect(&config.Config{DBType: "oracle", DBDatabase: "x", DBUser: "u"})
	if err == nil {
		t.Error("Expected unsupported type to fail")
	}
}
