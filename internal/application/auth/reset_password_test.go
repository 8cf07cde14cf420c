package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "github.com/haanhduc/mycontact/internal/application/auth"
	domain "github.com/haanhduc/mycontact/internal/domain/user"
)

type fakeResetStore struct {
	byToken map[string]domain.PasswordReset
	created []domain.PasswordReset
	used    []int64
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{byToken: map[string]domain.PasswordReset{}}
}

func (f *fakeResetStore) CreateReset(ctx context.Context, reset domain.PasswordReset) error {
	f.created = append(f.created, reset)
	f.byToken[reset.Token] = reset
	return nil
}

func (f *fakeResetStore) FindReset(ctx context.Context, token string) (domain.PasswordReset, error) {
	reset, ok := f.byToken[token]
	if !ok {
		return domain.PasswordReset{}, domain.ErrUserNotFound
	}
	return reset, nil
}

func (f *fakeResetStore) MarkResetUsed(ctx context.Context, resetID int64) error {
	f.used = append(f.used, resetID)
	return nil
}

type fakePasswordUpdater struct {
	userID int64
	hash   string
}

func (f *fakePasswordUpdater) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	f.userID = userID
	f.hash = hash
	return nil
}

func TestResetPasswordSuccess(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	users.byEmail["an@example.com"] = domain.User{ID: 7, Email: "an@example.com", ProviderName: domain.ProviderLocal}

	resets := newFakeResetStore()
	resets.byToken["tok-1"] = domain.PasswordReset{ID: 11, UserID: 7, Token: "tok-1", ExpiresAt: time.Now().Add(time.Minute)}

	updater := &fakePasswordUpdater{}
	uc := app.NewResetPassword(users, resets, updater)

	err := uc.Execute(context.Background(), app.ResetPasswordInput{
		Email:           "an@example.com",
		Token:           "tok-1",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updater.userID != 7 || updater.hash == "" || updater.hash == "newpass" {
		t.Fatalf("expected hashed password stored for user 7, got %+v", updater)
	}
	if len(resets.used) != 1 || resets.used[0] != 11 {
		t.Fatalf("expected token 11 marked used, got %v", resets.used)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	users.byEmail["an@example.com"] = domain.User{ID: 7, Email: "an@example.com"}

	resets := newFakeResetStore()
	resets.byToken["tok-1"] = domain.PasswordReset{ID: 11, UserID: 7, Token: "tok-1", ExpiresAt: time.Now().Add(-time.Minute)}

	uc := app.NewResetPassword(users, resets, &fakePasswordUpdater{})

	err := uc.Execute(context.Background(), app.ResetPasswordInput{
		Email:           "an@example.com",
		Token:           "tok-1",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	})
	if !errors.Is(err, app.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
}

func TestResetPasswordTokenForOtherUser(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	users.byEmail["an@example.com"] = domain.User{ID: 7, Email: "an@example.com"}

	resets := newFakeResetStore()
	resets.byToken["tok-1"] = domain.PasswordReset{ID: 11, UserID: 99, Token: "tok-1", ExpiresAt: time.Now().Add(time.Minute)}

	uc := app.NewResetPassword(users, resets, &fakePasswordUpdater{})

	err := uc.Execute(context.Background(), app.ResetPasswordInput{
		Email:           "an@example.com",
		Token:           "tok-1",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	})
	if !errors.Is(err, app.ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
}

func TestForgotPasswordAlwaysSucceeds(t *testing.T) {
	t.Parallel()

	users := newFakeUserRepo()
	resets := newFakeResetStore()
	mailer := &fakeMailer{}
	uc := app.NewForgotPassword(users, resets, mailer, "https://contacts.example.com", discardLogger())

	// Unknown email: no error, no mail.
	if err := uc.Execute(context.Background(), app.ForgotPasswordInput{Email: "nobody@example.com"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mailer.sent != 0 {
		t.Fatal("no mail should be sent for unknown accounts")
	}

	// Known local account: token stored and mailed.
	users.byEmail["an@example.com"] = domain.User{ID: 7, Email: "an@example.com", FullName: "Nguyen Van An", ProviderName: domain.ProviderLocal}
	if err := uc.Execute(context.Background(), app.ForgotPasswordInput{Email: "an@example.com"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resets.created) != 1 {
		t.Fatalf("expected 1 reset token, got %d", len(resets.created))
	}
	if mailer.sent != 1 {
		t.Fatalf("expected 1 mail, got %d", mailer.sent)
	}
}

type fakeMailer struct {
	sent int
	link string
}

func (f *fakeMailer) SendPasswordReset(ctx context.Context, toEmail, userName, resetLink string) error {
	f.sent++
	f.link = resetLink
	return nil
}
