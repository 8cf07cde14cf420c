package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type userStore interface {
	GetByID(ctx context.Context, userID int64) (domain.User, error)
	Update(ctx context.Context, u domain.User) error
	// EmailInUse reports whether another account already uses the email.
	EmailInUse(ctx context.Context, email string, excludeUserID int64) (bool, error)
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
}

// AvatarStore persists an uploaded image and returns its public path.
type AvatarStore interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrWrongOldPassword  = errors.New("old password is incorrect")
	ErrUpdateProfile     = errors.New("failed to update profile")
	ErrChangePassword    = errors.New("failed to change password")
	ErrExternalPassword  = errors.New("provider accounts have no password")
	ErrStoreAvatarFailed = errors.New("failed to store avatar")
)

type View struct {
	UserID     int64      `json:"user_id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	AvatarPath string     `json:"avatar_path,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type UpdateInput struct {
	UserID     int64
	FullName   string
	Email      string
	AvatarName string
	Avatar     io.Reader
}

type Service struct {
	users   userStore
	avatars AvatarStore
}

func NewService(users userStore, avatars AvatarStore) *Service {
	return &Service{users: users, avatars: avatars}
}

func (s *Service) Get(ctx context.Context, userID int64) (View, error) {
	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return View{}, ErrProfileNotFound
		}
		return View{}, fmt.Errorf("%w: %v", ErrUpdateProfile, err)
	}
	return view(account), nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (View, error) {
	account, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return View{}, ErrProfileNotFound
		}
		return View{}, fmt.Errorf("%w: %v", ErrUpdateProfile, err)
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName != "" && fullName != account.FullName {
		account.FullName = fullName
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.EqualFold(email, account.Email) {
		if err := domain.ValidateEmail(email); err != nil {
			return View{}, err
		}
		taken, err := s.users.EmailInUse(ctx, email, account.ID)
		if err != nil {
			return View{}, fmt.Errorf("%w: %v", ErrUpdateProfile, err)
		}
		if taken {
			return View{}, ErrEmailTaken
		}
		account.Email = email
	}

	if in.Avatar != nil {
		path, err := s.avatars.Save(ctx, in.AvatarName, in.Avatar)
		if err != nil {
			return View{}, fmt.Errorf("%w: %v", ErrStoreAvatarFailed, err)
		}
		account.AvatarPath = path
	}

	if err := s.users.Update(ctx, account); err != nil {
		return View{}, fmt.Errorf("%w: %v", ErrUpdateProfile, err)
	}
	return view(account), nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return domain.ErrWeakPassword
	}
	if len(newPassword) < 6 {
		return domain.ErrWeakPassword
	}

	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("%w: %v", ErrChangePassword, err)
	}
	if account.PasswordHash == "" {
		return ErrExternalPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(oldPassword)) != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChangePassword, err)
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrChangePassword, err)
	}
	return nil
}

func view(u domain.User) View {
	return View{
		UserID:     u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Role:       u.Role,
		AvatarPath: u.AvatarPath,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
