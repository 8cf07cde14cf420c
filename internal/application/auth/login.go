package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type Login interface {
	Execute(ctx context.Context, in LoginInput) (LoginOutput, error)
}

type login struct {
	users  userFinder
	issuer *TokenIssuer
}

func NewLogin(users userFinder, issuer *TokenIssuer) Login {
	return &login{users: users, issuer: issuer}
}

func (uc *login) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	account, err := uc.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return LoginOutput{}, ErrInvalidCredentials
		}
		return LoginOutput{}, fmt.Errorf("find user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if !account.IsActive {
		return LoginOutput{}, ErrAccountLocked
	}

	token, err := uc.issuer.Issue(account)
	if err != nil {
		return LoginOutput{}, err
	}

	return LoginOutput{
		Token:    token,
		UserID:   account.ID,
		FullName: account.FullName,
		Role:     account.Role,
	}, nil
}
