package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/haanhduc/mycontact/internal/application/auth"
	domain "github.com/haanhduc/mycontact/internal/domain/user"
)

type AuthHandler struct {
	register       auth.Register
	login          auth.Login
	externalLogin  auth.CompleteExternalLogin
	forgotPassword auth.ForgotPassword
	resetPassword  auth.ResetPassword
}

func NewAuthHandler(
	register auth.Register,
	login auth.Login,
	externalLogin auth.CompleteExternalLogin,
	forgotPassword auth.ForgotPassword,
	resetPassword auth.ResetPassword,
) *AuthHandler {
	return &AuthHandler{
		register:       register,
		login:          login,
		externalLogin:  externalLogin,
		forgotPassword: forgotPassword,
		resetPassword:  resetPassword,
	}
}

type registerRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.register.Execute(c.Request().Context(), auth.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch):
			return badRequest(c, "password_mismatch", "password confirmation does not match")
		case errors.Is(err, domain.ErrInvalidFullName):
			return badRequest(c, "invalid_full_name", "full name must be 5-100 characters without digits or symbols")
		case errors.Is(err, domain.ErrInvalidEmail):
			return badRequest(c, "invalid_email", "email address is not valid")
		case errors.Is(err, domain.ErrWeakPassword):
			return badRequest(c, "weak_password", "password must be at least 6 characters")
		case errors.Is(err, auth.ErrEmailTaken):
			return fail(c, http.StatusConflict, "email_taken", "email already in use")
		}
		return internalError(c, "failed to register")
	}

	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.login.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return fail(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		case errors.Is(err, auth.ErrAccountLocked):
			return fail(c, http.StatusForbidden, "account_locked", "account is locked")
		}
		return internalError(c, "failed to log in")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

type externalLoginRequest struct {
	ProviderName string `json:"provider_name"`
	ProviderID   string `json:"provider_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
}

func (h *AuthHandler) ExternalLogin(c echo.Context) error {
	var req externalLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}
	if req.ProviderName == "" || req.ProviderID == "" {
		return badRequest(c, "bad_request", "provider_name and provider_id are required")
	}

	out, err := h.externalLogin.Execute(c.Request().Context(), auth.CompleteExternalLoginInput{
		ProviderName: req.ProviderName,
		ProviderID:   req.ProviderID,
		Email:        req.Email,
		FullName:     req.FullName,
	})
	if err != nil {
		if errors.Is(err, auth.ErrAccountLocked) {
			return fail(c, http.StatusForbidden, "account_locked", "account is locked")
		}
		return internalError(c, "failed to complete external login")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	// Always accepted, so callers cannot enumerate which emails exist.
	if err := h.forgotPassword.Execute(c.Request().Context(), auth.ForgotPasswordInput{Email: req.Email}); err != nil {
		return internalError(c, "failed to process request")
	}
	return c.JSON(http.StatusAccepted, apiResponse{Data: map[string]string{
		"message": "if the address exists, a reset mail has been sent",
	}})
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	err := h.resetPassword.Execute(c.Request().Context(), auth.ResetPasswordInput{
		Email:           req.Email,
		Token:           req.Token,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch):
			return badRequest(c, "password_mismatch", "password confirmation does not match")
		case errors.Is(err, domain.ErrWeakPassword):
			return badRequest(c, "weak_password", "password must be at least 6 characters")
		case errors.Is(err, auth.ErrInvalidResetToken):
			return badRequest(c, "invalid_token", "invalid or expired reset token")
		}
		return internalError(c, "failed to reset password")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "password updated"}})
}
