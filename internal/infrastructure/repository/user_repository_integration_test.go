package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	userdomain "github.com/haanhduc/mycontact/internal/domain/user"
	"github.com/haanhduc/mycontact/internal/infrastructure/repository"
)

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to create pgx pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestUserRepositoryIntegration(t *testing.T) {
	conn := openTestDB(t)
	repo := repository.NewUserRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, userdomain.User{
		FullName:     "Hoang Van Em",
		Email:        "em@example.com",
		PasswordHash: "hash",
		Role:         userdomain.RoleUser,
		IsActive:     true,
		ProviderName: userdomain.ProviderLocal,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("id not assigned")
	}

	if _, err := repo.Create(ctx, userdomain.User{
		FullName:     "Duplicate",
		Email:        "em@example.com",
		ProviderName: userdomain.ProviderLocal,
	}); !errors.Is(err, userdomain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	found, err := repo.FindByEmail(ctx, "em@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("wrong account: %+v", found)
	}

	found.ProviderName = "google"
	found.ProviderID = "google-123"
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("update user: %v", err)
	}
	linked, err := repo.FindByProvider(ctx, "google", "google-123")
	if err != nil {
		t.Fatalf("find by provider: %v", err)
	}
	if linked.ID != created.ID {
		t.Fatalf("provider lookup mismatch: %+v", linked)
	}

	inUse, err := repo.EmailInUse(ctx, "em@example.com", created.ID)
	if err != nil {
		t.Fatalf("email in use: %v", err)
	}
	if inUse {
		t.Fatal("own email reported as taken")
	}
}

func TestPasswordResetRepositoryIntegration(t *testing.T) {
	conn := openTestDB(t)
	users := repository.NewUserRepository(conn)
	resets := repository.NewPasswordResetRepository(conn)
	ctx := context.Background()

	account, err := users.Create(ctx, userdomain.User{
		FullName:     "Reset Target",
		Email:        "reset@example.com",
		ProviderName: userdomain.ProviderLocal,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	reset := userdomain.PasswordReset{
		UserID:    account.ID,
		Token:     "4f2c7a55-0000-4000-8000-000000000001",
		ExpiresAt: time.Now().Add(30 * time.Minute),
		CreatedAt: time.Now(),
	}
	if err := resets.CreateReset(ctx, reset); err != nil {
		t.Fatalf("create reset: %v", err)
	}

	found, err := resets.FindReset(ctx, reset.Token)
	if err != nil {
		t.Fatalf("find reset: %v", err)
	}
	if found.UserID != account.ID || found.UsedAt != nil {
		t.Fatalf("unexpected reset: %+v", found)
	}

	if err := resets.MarkResetUsed(ctx, found.ID); err != nil {
		t.Fatalf("mark used: %v", err)
	}
	if err := resets.MarkResetUsed(ctx, found.ID); err == nil {
		t.Fatal("token consumed twice")
	}
}
