package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"brightforge/internal/domain"
)

func TestMemoryStoreListVerifiedFiltersUnverified(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	verifiedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = store.Create(ctx, domain.User{ID: "u1", Email: "u1@example.com", EmailVerifiedAt: &verifiedAt})
	_ = store.Create(ctx, domain.User{ID: "u2", Email: "u2@example.com"})

	users, err := store.ListVerified(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(users) != 1 || users[0].ID != "u1" {
		t.Fatalf("expected only verified user u1, got %+v", users)
	}
}

func TestMemoryStoreNotFoundSentinels(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for user, got %v", err)
	}
	if _, err := store.GetByUserID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for profile, got %v", err)
	}
	if _, err := store.GetRecommendation(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for recommendation, got %v", err)
	}
}

func TestMemoryStoreSaveWithRecommendationRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	profile := domain.BusinessProfile{UserID: "u1", Industry: "technology", UpdatedAt: time.Now().UTC()}
	result := domain.RecommendationResult{PackageID: "growth-accelerator", Score: 95, Reason: "fits"}
	if err := store.SaveWithRecommendation(ctx, profile, result); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotProfile, err := store.GetByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if gotProfile.Industry != "technology" {
		t.Fatalf("unexpected profile: %+v", gotProfile)
	}

	gotResult, err := store.GetRecommendation(ctx, "u1")
	if err != nil {
		t.Fatalf("get recommendation: %v", err)
	}
	if gotResult.PackageID != "growth-accelerator" || gotResult.Score != 95 {
		t.Fatalf("unexpected recommendation: %+v", gotResult)
	}
}

func TestMemoryStoreSetLastReminderSentOnlyMatchingPair(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	events := []domain.PackageViewEvent{
		{ID: "e1", UserID: "u1", PackageType: "digital-foundation", ViewedAt: base},
		{ID: "e2", UserID: "u1", PackageType: "growth-accelerator", ViewedAt: base},
		{ID: "e3", UserID: "u2", PackageType: "digital-foundation", ViewedAt: base},
	}
	for _, e := range events {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	sentAt := base.Add(24 * time.Hour)
	if err := store.SetLastReminderSent(ctx, "u1", "digital-foundation", sentAt); err != nil {
		t.Fatalf("set last reminder: %v", err)
	}

	u1Views, _ := store.ListByUser(ctx, "u1")
	for _, e := range u1Views {
		switch e.PackageType {
		case "digital-foundation":
			if e.LastReminderSent == nil || !e.LastReminderSent.Equal(sentAt) {
				t.Fatalf("expected timestamp on (u1, digital-foundation), got %+v", e.LastReminderSent)
			}
		default:
			if e.LastReminderSent != nil {
				t.Fatalf("timestamp leaked to (u1, %s)", e.PackageType)
			}
		}
	}

	u2Views, _ := store.ListByUser(ctx, "u2")
	if u2Views[0].LastReminderSent != nil {
		t.Fatalf("timestamp leaked to another user")
	}
}

func TestMemoryStoreListBySession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Append(ctx, domain.PackageViewEvent{ID: "e1", SessionID: "s1", PackageType: "digital-foundation", ViewedAt: time.Now().UTC()})
	_ = store.Append(ctx, domain.PackageViewEvent{ID: "e2", UserID: "u1", PackageType: "digital-foundation", ViewedAt: time.Now().UTC()})

	events, err := store.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("expected only session event, got %+v", events)
	}
}
