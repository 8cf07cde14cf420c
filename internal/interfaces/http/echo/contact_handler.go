package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	app "github.com/haanhduc/mycontact/internal/application/contact"
	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type ContactHandler struct {
	list      app.ListContacts
	get       app.GetContact
	create    app.CreateContact
	update    app.UpdateContact
	remove    app.DeleteContact
	dashboard app.GetDashboard
}

func NewContactHandler(
	list app.ListContacts,
	get app.GetContact,
	create app.CreateContact,
	update app.UpdateContact,
	remove app.DeleteContact,
	dashboard app.GetDashboard,
) *ContactHandler {
	return &ContactHandler{
		list:      list,
		get:       get,
		create:    create,
		update:    update,
		remove:    remove,
		dashboard: dashboard,
	}
}

func (h *ContactHandler) ListContacts(c echo.Context) error {
	out, err := h.list.Execute(c.Request().Context(), app.ListContactsInput{
		OwnerID:   sessionFrom(c).UserID,
		Search:    c.QueryParam("search"),
		PageIndex: queryInt(c, "page", 1),
		PageSize:  queryInt(c, "page_size", 0),
	})
	if err != nil {
		return internalError(c, "failed to list contacts")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out.Page})
}

func (h *ContactHandler) GetContact(c echo.Context) error {
	contactID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid_contact_id", "id must be a positive integer")
	}

	out, err := h.get.Execute(c.Request().Context(), app.GetContactInput{
		OwnerID:   sessionFrom(c).UserID,
		ContactID: contactID,
	})
	if err != nil {
		if errors.Is(err, app.ErrContactNotFound) {
			return notFound(c, "contact not found")
		}
		return internalError(c, "failed to get contact")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

type contactRequest struct {
	FullName    string  `json:"full_name"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	Notes       string  `json:"notes"`
	CategoryIDs []int64 `json:"category_ids"`
}

func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	out, err := h.create.Execute(c.Request().Context(), app.CreateContactInput{
		OwnerID:     sessionFrom(c).UserID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		if mapped := contactValidationError(c, err); mapped != nil {
			return mapped
		}
		return internalError(c, "failed to create contact")
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *ContactHandler) UpdateContact(c echo.Context) error {
	contactID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid_contact_id", "id must be a positive integer")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	err = h.update.Execute(c.Request().Context(), app.UpdateContactInput{
		OwnerID:     sessionFrom(c).UserID,
		ContactID:   contactID,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		if errors.Is(err, app.ErrContactNotFound) {
			return notFound(c, "contact not found")
		}
		if mapped := contactValidationError(c, err); mapped != nil {
			return mapped
		}
		return internalError(c, "failed to update contact")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "contact updated"}})
}

func (h *ContactHandler) DeleteContact(c echo.Context) error {
	contactID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid_contact_id", "id must be a positive integer")
	}

	err = h.remove.Execute(c.Request().Context(), app.DeleteContactInput{
		OwnerID:   sessionFrom(c).UserID,
		ContactID: contactID,
	})
	if err != nil {
		if errors.Is(err, app.ErrContactNotFound) {
			return notFound(c, "contact not found")
		}
		return internalError(c, "failed to delete contact")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "contact deleted"}})
}

func (h *ContactHandler) Dashboard(c echo.Context) error {
	out, err := h.dashboard.Execute(c.Request().Context(), sessionFrom(c).UserID)
	if err != nil {
		return internalError(c, "failed to load dashboard")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func contactValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFullName):
		return badRequest(c, "invalid_full_name", "full name must be 1-100 characters without digits or symbols")
	case errors.Is(err, domain.ErrInvalidPhoneNumber):
		return badRequest(c, "invalid_phone", "phone number must be 10 digits starting with 0")
	case errors.Is(err, domain.ErrInvalidEmail):
		return badRequest(c, "invalid_email", "email address is not valid")
	case errors.Is(err, domain.ErrInvalidAddress):
		return badRequest(c, "invalid_address", "address must be at most 200 characters")
	case errors.Is(err, domain.ErrDuplicatePhone):
		return fail(c, http.StatusConflict, "duplicate_phone", "a contact with this phone number already exists")
	}
	return nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
