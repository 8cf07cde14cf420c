package echo

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/haanhduc/mycontact/internal/application/profile"
	domain "github.com/haanhduc/mycontact/internal/domain/user"
)

type ProfileHandler struct {
	service *app.Service
}

func NewProfileHandler(service *app.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), sessionFrom(c).UserID)
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			return notFound(c, "profile not found")
		}
		return internalError(c, "failed to load profile")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: view})
}

// UpdateProfile accepts a multipart form so the avatar can ride along
// with the text fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	in := app.UpdateInput{
		UserID:   sessionFrom(c).UserID,
		FullName: c.FormValue("full_name"),
		Email:    c.FormValue("email"),
	}

	if header, err := c.FormFile("avatar"); err == nil {
		avatar, err := header.Open()
		if err != nil {
			return badRequest(c, "bad_avatar", "could not read avatar upload")
		}
		defer avatar.Close()
		in.AvatarName = header.Filename
		in.Avatar = io.Reader(avatar)
	}

	view, err := h.service.Update(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProfileNotFound):
			return notFound(c, "profile not found")
		case errors.Is(err, domain.ErrInvalidFullName):
			return badRequest(c, "invalid_full_name", "full name must be 5-100 characters without digits or symbols")
		case errors.Is(err, domain.ErrInvalidEmail):
			return badRequest(c, "invalid_email", "email address is not valid")
		case errors.Is(err, app.ErrEmailTaken):
			return fail(c, http.StatusConflict, "email_taken", "email already in use")
		case errors.Is(err, app.ErrStoreAvatarFailed):
			return internalError(c, "failed to store avatar")
		}
		return internalError(c, "failed to update profile")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: view})
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	err := h.service.ChangePassword(c.Request().Context(), sessionFrom(c).UserID, req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWeakPassword):
			return badRequest(c, "weak_password", "password must be at least 6 characters and match its confirmation")
		case errors.Is(err, app.ErrWrongOldPassword):
			return badRequest(c, "wrong_old_password", "old password is incorrect")
		case errors.Is(err, app.ErrExternalPassword):
			return badRequest(c, "external_account", "provider accounts have no password to change")
		case errors.Is(err, app.ErrProfileNotFound):
			return notFound(c, "profile not found")
		}
		return internalError(c, "failed to change password")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "password changed"}})
}
