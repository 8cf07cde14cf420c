package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type resetStore interface {
	resetCreator
	FindReset(ctx context.Context, token string) (domain.PasswordReset, error)
	MarkResetUsed(ctx context.Context, resetID int64) error
}

type passwordUpdater interface {
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
}

type ResetPasswordInput struct {
	Email           string
	Token           string
	NewPassword     string
	ConfirmPassword string
}

type ResetPassword interface {
	Execute(ctx context.Context, in ResetPasswordInput) error
}

type resetPassword struct {
	users  userFinder
	resets resetStore
	hashes passwordUpdater
}

func NewResetPassword(users userFinder, resets resetStore, hashes passwordUpdater) ResetPassword {
	return &resetPassword{users: users, resets: resets, hashes: hashes}
}

func (uc *resetPassword) Execute(ctx context.Context, in ResetPasswordInput) error {
	if in.NewPassword != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(in.NewPassword) < 6 {
		return domain.ErrWeakPassword
	}

	account, err := uc.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("%w: %v", ErrResetPassword, err)
	}

	reset, err := uc.resets.FindReset(ctx, strings.TrimSpace(in.Token))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("%w: %v", ErrResetPassword, err)
	}
	if reset.UserID != account.ID || !reset.Usable(time.Now()) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetPassword, err)
	}

	if err := uc.hashes.UpdatePasswordHash(ctx, account.ID, string(hash)); err != nil {
		return fmt.Errorf("%w: %v", ErrResetPassword, err)
	}
	if err := uc.resets.MarkResetUsed(ctx, reset.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrResetPassword, err)
	}
	return nil
}
