package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/haanhduc/mycontact/internal/application/admin"
)

type AdminHandler struct {
	service *app.Service
}

func NewAdminHandler(service *app.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	out, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return internalError(c, "failed to load dashboard")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := h.service.ListUsers(c.Request().Context(),
		c.QueryParam("search"),
		queryInt(c, "page", 1),
		queryInt(c, "page_size", 0),
	)
	if err != nil {
		return internalError(c, "failed to list users")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: page})
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid_user_id", "id must be a positive integer")
	}

	row, err := h.service.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			return notFound(c, "user not found")
		}
		return internalError(c, "failed to get user")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: row})
}

func (h *AdminHandler) ListContacts(c echo.Context) error {
	ownerID := int64(queryInt(c, "user_id", 0))
	page, err := h.service.ListContacts(c.Request().Context(),
		c.QueryParam("search"),
		ownerID,
		queryInt(c, "page", 1),
		queryInt(c, "page_size", 0),
	)
	if err != nil {
		return internalError(c, "failed to list contacts")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: page})
}
