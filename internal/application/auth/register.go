package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/haanhduc/mycontact/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type userCreator interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type RegisterOutput struct {
	UserID int64 `json:"user_id"`
}

type Register interface {
	Execute(ctx context.Context, in RegisterInput) (RegisterOutput, error)
}

type registerUserRepo interface {
	userFinder
	userCreator
}

type register struct {
	users registerUserRepo
}

func NewRegister(users registerUserRepo) Register {
	return &register{users: users}
}

func (uc *register) Execute(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	if in.Password != in.ConfirmPassword {
		return RegisterOutput{}, ErrPasswordMismatch
	}
	if err := domain.ValidateRegistration(in.FullName, in.Email, in.Password); err != nil {
		return RegisterOutput{}, err
	}

	email := strings.TrimSpace(in.Email)
	_, err := uc.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return RegisterOutput{}, ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return RegisterOutput{}, fmt.Errorf("%w: %v", ErrRegisterUser, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterOutput{}, fmt.Errorf("%w: %v", ErrRegisterUser, err)
	}

	created, err := uc.users.Create(ctx, domain.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		ProviderName: domain.ProviderLocal,
	})
	if err != nil {
		return RegisterOutput{}, fmt.Errorf("%w: %v", ErrRegisterUser, err)
	}

	return RegisterOutput{UserID: created.ID}, nil
}
