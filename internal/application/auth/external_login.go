package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
)

type externalUserRepo interface {
	userFinder
	userCreator
	FindByProvider(ctx context.Context, providerName, providerID string) (domain.User, error)
	Update(ctx context.Context, u domain.User) error
}

// CompleteExternalLoginInput carries the identity asserted by a
// third-party provider after its own OAuth dance has finished.
type CompleteExternalLoginInput struct {
	ProviderName string
	ProviderID   string
	Email        string
	FullName     string
}

type CompleteExternalLogin interface {
	Execute(ctx context.Context, in CompleteExternalLoginInput) (LoginOutput, error)
}

type completeExternalLogin struct {
	users  externalUserRepo
	issuer *TokenIssuer
}

func NewCompleteExternalLogin(users externalUserRepo, issuer *TokenIssuer) CompleteExternalLogin {
	return &completeExternalLogin{users: users, issuer: issuer}
}

// Execute resolves the asserted identity to a local account: first by
// (provider, provider id), then by linking an existing account with the
// same email, and finally by creating a passwordless provider account.
func (uc *completeExternalLogin) Execute(ctx context.Context, in CompleteExternalLoginInput) (LoginOutput, error) {
	providerName := strings.TrimSpace(in.ProviderName)
	providerID := strings.TrimSpace(in.ProviderID)
	email := strings.TrimSpace(in.Email)
	if providerName == "" || providerID == "" {
		return LoginOutput{}, ErrInvalidCredentials
	}
	if err := domain.ValidateEmail(email); err != nil {
		return LoginOutput{}, err
	}

	account, err := uc.users.FindByProvider(ctx, providerName, providerID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		account, err = uc.linkOrCreate(ctx, providerName, providerID, email, in.FullName)
		if err != nil {
			return LoginOutput{}, err
		}
	default:
		return LoginOutput{}, fmt.Errorf("%w: %v", ErrExternalLogin, err)
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

func (uc *completeExternalLogin) linkOrCreate(ctx context.Context, providerName, providerID, email, fullName string) (domain.User, error) {
	existing, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		existing.ProviderName = providerName
		existing.ProviderID = providerID
		if err := uc.users.Update(ctx, existing); err != nil {
			return domain.User{}, fmt.Errorf("%w: %v", ErrExternalLogin, err)
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("%w: %v", ErrExternalLogin, err)
	}

	created, err := uc.users.Create(ctx, domain.User{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		Role:         domain.RoleUser,
		IsActive:     true,
		ProviderName: providerName,
		ProviderID:   providerID,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrExternalLogin, err)
	}
	return created, nil
}
