package profile_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	app "github.com/haanhduc/mycontact/internal/application/profile"
	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	byID        map[int64]domain.User
	emailInUse  bool
	updated     []domain.User
	newHash     string
	newHashUser int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[int64]domain.User{}}
}

func (f *fakeUserStore) GetByID(ctx context.Context, userID int64) (domain.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Update(ctx context.Context, u domain.User) error {
	f.updated = append(f.updated, u)
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserStore) EmailInUse(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	return f.emailInUse, nil
}

func (f *fakeUserStore) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	f.newHashUser = userID
	f.newHash = hash
	return nil
}

type fakeAvatarStore struct {
	savedName string
	saved     []byte
	path      string
	err       error
}

func (f *fakeAvatarStore) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.savedName = originalName
	data, _ := io.ReadAll(content)
	f.saved = data
	return f.path, nil
}

func TestUpdateProfileChangesEmailAfterDuplicateCheck(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	users.byID[7] = domain.User{ID: 7, FullName: "Nguyen Van An", Email: "an@example.com"}
	svc := app.NewService(users, &fakeAvatarStore{})

	out, err := svc.Update(context.Background(), app.UpdateInput{UserID: 7, Email: "moi@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Email != "moi@example.com" {
		t.Fatalf("unexpected email: %s", out.Email)
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	users.byID[7] = domain.User{ID: 7, Email: "an@example.com"}
	users.emailInUse = true
	svc := app.NewService(users, &fakeAvatarStore{})

	_, err := svc.Update(context.Background(), app.UpdateInput{UserID: 7, Email: "taken@example.com"})
	if !errors.Is(err, app.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateProfileStoresAvatar(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	users.byID[7] = domain.User{ID: 7, Email: "an@example.com"}
	avatars := &fakeAvatarStore{path: "/images/avatars/abc_me.png"}
	svc := app.NewService(users, avatars)

	out, err := svc.Update(context.Background(), app.UpdateInput{
		UserID:     7,
		AvatarName: "me.png",
		Avatar:     bytes.NewReader([]byte("png-bytes")),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.AvatarPath != "/images/avatars/abc_me.png" {
		t.Fatalf("unexpected avatar path: %s", out.AvatarPath)
	}
	if string(avatars.saved) != "png-bytes" {
		t.Fatalf("avatar content not stored: %q", avatars.saved)
	}
}

func TestChangePasswordVerifiesOld(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
	users := newFakeUserStore()
	users.byID[7] = domain.User{ID: 7, PasswordHash: string(hash)}
	svc := app.NewService(users, &fakeAvatarStore{})

	if err := svc.ChangePassword(context.Background(), 7, "wrong", "newpass", "newpass"); !errors.Is(err, app.ErrWrongOldPassword) {
		t.Fatalf("expected ErrWrongOldPassword, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), 7, "oldpass", "newpass", "newpass"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if users.newHashUser != 7 || users.newHash == "" {
		t.Fatal("expected a new hash stored")
	}
}

func TestChangePasswordProviderAccount(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	users.byID[7] = domain.User{ID: 7, ProviderName: "google"}
	svc := app.NewService(users, &fakeAvatarStore{})

	err := svc.ChangePassword(context.Background(), 7, "x", "newpass", "newpass")
	if !errors.Is(err, app.ErrExternalPassword) {
		t.Fatalf("expected ErrExternalPassword, got %v", err)
	}
}
