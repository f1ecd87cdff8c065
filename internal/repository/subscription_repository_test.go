package repository

import (
	"context"
	"testing"

	"moviehub-backend/internal/models"
)

func TestSubscriptionLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	genre := "Horror"
	sub := &models.Subscription{Email: "alice@example.com", GenreName: &genre}
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatal(err)
	}
	if sub.ID == 0 {
		t.Fatal("subscription ID not assigned")
	}

	found, err := repo.FindByID(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.Email != "alice@example.com" {
		t.Fatalf("FindByID = %+v", found)
	}
	if found.GenreName == nil || *found.GenreName != "Horror" {
		t.Errorf("GenreName = %v, want Horror", found.GenreName)
	}

	if err := repo.Delete(ctx, sub.ID); err != nil {
		t.Fatal(err)
	}
	gone, err := repo.FindByID(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if gone != nil {
		t.Errorf("subscription survived delete: %+v", gone)
	}
}

func TestSubscriptionFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "a@example.com"} {
		if err := repo.Create(ctx, &models.Subscription{Email: email}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("FindAll returned %d, want 3", len(all))
	}

	matched, err := repo.FindByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 2 {
		t.Errorf("FindByEmail returned %d, want 2", len(matched))
	}

	none, err := repo.FindByEmail(ctx, "absent@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("FindByEmail for absent address returned %d, want 0", len(none))
	}
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed",
		Roles:    []models.Role{{Name: "USER"}},
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatal(err)
	}

	found, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.Email != "alice@example.com" {
		t.Fatalf("FindByUsername = %+v", found)
	}
	if len(found.Roles) != 1 || found.Roles[0].Name != "USER" {
		t.Errorf("roles not preloaded: %+v", found.Roles)
	}

	exists, err := repo.ExistsByUsername(ctx, "alice")
	if err != nil || !exists {
		t.Fatalf("ExistsByUsername = %v, %v", exists, err)
	}

	absent, err := repo.FindByUsername(ctx, "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if absent != nil {
		t.Errorf("FindByUsername for absent user = %+v, want nil", absent)
	}
}

func TestGenreFindOrCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenreRepository(db)
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, "Action")
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.FindOrCreate(ctx, "Action")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Errorf("FindOrCreate created a duplicate: %d != %d", first.ID, second.ID)
	}

	genres, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(genres) != 1 {
		t.Errorf("FindAll returned %d genres, want 1", len(genres))
	}
}
