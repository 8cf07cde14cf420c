package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/haanhduc/mycontact/internal/domain/user"
)

const resetTokenTTL = 30 * time.Minute

type resetCreator interface {
	CreateReset(ctx context.Context, reset domain.PasswordReset) error
}

type resetMailSender interface {
	SendPasswordReset(ctx context.Context, toEmail, userName, resetLink string) error
}

type ForgotPasswordInput struct {
	Email string
}

// ForgotPassword always reports success to the caller so the endpoint
// cannot be used to discover which emails have accounts.
type ForgotPassword interface {
	Execute(ctx context.Context, in ForgotPasswordInput) error
}

type forgotPassword struct {
	users   userFinder
	resets  resetCreator
	mailer  resetMailSender
	baseURL string
	logger  *slog.Logger
}

func NewForgotPassword(users userFinder, resets resetCreator, mailer resetMailSender, baseURL string, logger *slog.Logger) ForgotPassword {
	return &forgotPassword{
		users:   users,
		resets:  resets,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

func (uc *forgotPassword) Execute(ctx context.Context, in ForgotPasswordInput) error {
	email := strings.TrimSpace(in.Email)
	if domain.ValidateEmail(email) != nil {
		return nil
	}

	account, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			uc.logger.Error("forgot password lookup failed", "error", err)
		}
		return nil
	}
	if account.ProviderName != domain.ProviderLocal {
		// Provider accounts have no password to reset.
		return nil
	}

	token := uuid.NewString()
	reset := domain.PasswordReset{
		UserID:    account.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := uc.resets.CreateReset(ctx, reset); err != nil {
		uc.logger.Error("store reset token failed", "error", err)
		return nil
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s", uc.baseURL, token, email)
	if err := uc.mailer.SendPasswordReset(ctx, account.Email, account.FullName, link); err != nil {
		uc.logger.Error("send reset mail failed", "error", err)
	}
	return nil
}
