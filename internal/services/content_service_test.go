package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/socialsync/socialdb/internal/models"
	"github.com/socialsync/socialdb/internal/services"
	"gorm.io/datatypes"
)

// TestContentCreate tests ingesting a content item with metadata.
func TestContentCreate(t *testing.T) {
	svc := services.NewContentService(setupTestDB(t))

	res := svc.Create(context.Background(), services.CreateContentInput{
		Type:            models.ContentTypeVideo,
		OriginalContent: "clip description",
		SocialAccountID: uuid.NewString(),
		Platform:        models.PlatformTikTok,
		PostedAt:        time.Now().UTC(),
		Metadata:        datatypes.JSON(`{"views": 1200, "duration": 15}`),
	})
	if !res.Success {
		t.Fatalf("Expected success, got %s", res.Error)
	}
	if res.Data.ID == "" {
		t.Error("Expected an assigned identifier")
	}
	if res.Data.ProcessedContent != nil {
		t.Error("Expected processedContent to stay null until processed")
	}
	if len(res.Data.Metadata) == 0 {
		t.Error("Expected metadata stored as provided")
	}
}

// TestContentCreateValidation tests schema rejection on create.
func TestContentCreateValidation(t *testing.T) {
	svc := services.NewContentService(setupTestDB(t))

	cases := []services.CreateContentInput{
		{Type: "image", OriginalContent: "x", SocialAccountID: uuid.NewString(), Platform: models.PlatformTwitter, PostedAt: time.Now()},
		{Type: models.ContentTypeText, OriginalContent: "", SocialAccountID: uuid.NewString(), Platform: models.PlatformTwitter, PostedAt: time.Now()},
		{Type: models.ContentTypeText, OriginalContent: "x", SocialAccountID: "bad", Platform: models.PlatformTwitter, PostedAt: time.Now()},
		{Type: models.ContentTypeText, OriginalContent: "x", SocialAccountID: uuid.NewString(), Platform: "myspace", PostedAt: time.Now()},
		{Type: models.ContentTypeText, OriginalContent: "x", SocialAccountID: uuid.NewString(), Platform: models.PlatformTwitter},
	}
	for _, input := range cases {
		res := svc.Create(context.Background(), input)
		if res.Success {
			t.Errorf("Expected %+v to fail validation", input)
			continue
		}
		if res.Error != "Invalid content data provided" {
			t.Errorf("Expected validation message, got %q", res.Error)
		}
	}
}

// TestContentFindByID tests the lookup paths.
func TestContentFindByID(t *testing.T) {
	svc := services.NewContentService(setupTestDB(t))
	created := mustCreateContent(t, svc, uuid.NewString(), time.Now().UTC())

	res := svc.FindByID(context.Background(), created.ID)
	if !res.Success || res.Data.OriginalContent != "post body" {
		t.Errorf("Unexpected lookup result: %+v", res)
	}

	res = svc.FindByID(context.Background(), "nope")
	if res.Success || res.Error != "Invalid content ID format" {
		t.Errorf("Expected malformed-id rejection, got %+v", res)
	}
	res = svc.FindByID(context.Background(), uuid.NewString())
	if res.Success || res.Error != "Content not found" {
		t.Errorf("Expected not-found rejection, got %+v", res)
	}
}

// TestContentFeedOrdering tests that an account's feed comes back newest
// first.
func TestContentFeedOrdering(t *testing.T) {
	svc := services.NewContentService(setupTestDB(t))
	accountID := uuid.NewString()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	oldest := mustCreateContent(t, svc, accountID, base)
	newest := mustCreateContent(t, svc, accountID, base.Add(2*time.Hour))
	middle := mustCreateContent(t, svc, accountID, base.Add(time.Hour))

	// Content on another account stays out of the feed
	mustCreateContent(t, svc, uuid.NewString(), base.Add(3*time.Hour))

	res := svc.FindBySocialAccountID(context.Background(), accountID)
	if !res.Success {
		t.Fatalf("Expected success, got %s", res.Error)
	}
	if len(res.Data) != 3 {
		t.Fatalf("Expected 3 feed items, got %d", len(res.Data))
	}
	got := []string{res.Data[0].ID, res.Data[1].ID, res.Data[2].ID}
	want := []string{newest.ID, middle.ID, oldest.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Feed out of order: got %v, want %v", got, want)
		}
	}

	res = svc.FindBySocialAccountID(context.Background(), "nope")
	if res.Success || res.Error != "Invalid account ID format" {
		t.Errorf("Expected malformed-id rejection, got %+v", res)
	}
}

// TestContentFindAll tests the combinable filters and the recency ordering.
func TestContentFindAll(t *testing.T) {
	svc := services.NewContentService(setupTestDB(t))
	accountID := uuid.NewString()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mustCreateContent(t, svc, accountID, base)
	mustCreateContent(t, svc, accountID, base.Add(time.Hour))
	other := svc.Create(context.Background(), services.CreateContentInput{
		Type:            models.ContentTypeVideo,
		OriginalContent: "clip",
		SocialAccountID: uuid.NewString(),
		Platform:        models.PlatformInstagram,
		PostedAt:        base.Add(2 * time.Hour),
	})
	if !other.Success {
		t.Fatalf("Failed to create content: %s", other.Error)
	}

	res := svc.FindAll(context.Background(), services.ContentFilters{Type: models.ContentTypeText})
	if !res.Success || len(res.Data) != 2 {
		t.Errorf("Expected 2 text items, got %d", len(res.Data))
	}

	res = svc.FindAll(context.Background(), services.ContentFilters{Platform: models.PlatformInstagram})
	if !res.Success || len(res.Data) != 1 {
		t.Errorf("Expected 1 instagram item, got %d", len(res.Data))
	}

	res = svc.FindAll(context.Background(), services.ContentFilters{SocialAccountID: accountID})
	if !res.Success || len(res.Data) != 2 {
		t.Errorf("Expected 2 account items, got %d", len(res.Data))
	}

	res = svc.FindAll(context.Background(), services.ContentFilters{SocialAccountID: "nope"})
	if res.Success || res.Error != "Invalid account ID format in filters" {
		t.Errorf("Expected filter rejection, got %+v", res)
	}

	after := base.Add(30 * time.Minute)
	res = svc.FindAll(context.Background(), services.ContentFilters{PostedAfter: &after})
	if !res.Success || len(res.Data) != 2 {
		t.Errorf("Expected 2 items after bound, got %d", len(res.Data))
	}
	if len(res.Data) == 2 && res.Data[0].PostedAt.Before(res.Data[1].PostedAt) {
		t.Error("Expected newest-first ordering")
	}

	before := base.Add(30 * time.Minute)
	res = svc.FindAll(context.Background(), services.ContentFilters{PostedBefore: &before})
	if !res.Success || len(res.Data) != 1 {
		t.Errorf("Expected 1 item before bound, got %d", len(res.Data))
	}
}

// TestContentDelete tests deletion and the not-found path.
func TestContentDelete(t *testing.T) {
	svc := services.NewContentService(setupTestDB(t))
	item := mustCreateContent(t, svc, uuid.NewString(), time.Now().UTC())

	res := svc.Delete(context.Background(), item.ID)
	if !res.Success {
		t.Fatalf("Expected success, got %s", res.Error)
	}

	res = svc.Delete(context.Background(), item.ID)
	if res.Success || res.Error != "Content not found" {
		t.Errorf("Expected not-found rejection, got %+v", res)
	}
	res = svc.Delete(context.Background(), "nope")
	if res.Success || res.Error != "Invalid content ID format" {
		t.Errorf("Expected malformed-id rejection, got %+v", res)
	}
}
