package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/haanhduc/mycontact/internal/application/category"
	domain "github.com/haanhduc/mycontact/internal/domain/contact"
)

type CategoryHandler struct {
	service *app.Service
}

func NewCategoryHandler(service *app.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), sessionFrom(c).UserID, c.QueryParam("search"))
	if err != nil {
		return internalError(c, "failed to list categories")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: views})
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid_category_id", "id must be a positive integer")
	}

	view, err := h.service.Get(c.Request().Context(), sessionFrom(c).UserID, categoryID)
	if err != nil {
		if errors.Is(err, app.ErrCategoryNotFound) {
			return notFound(c, "category not found")
		}
		return internalError(c, "failed to get category")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: view})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	id, err := h.service.Create(c.Request().Context(), sessionFrom(c).UserID, req.Name)
	if err != nil {
		if mapped := categoryValidationError(c, err); mapped != nil {
			return mapped
		}
		return internalError(c, "failed to create category")
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: map[string]int64{"category_id": id}})
}

func (h *CategoryHandler) RenameCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, "invalid_category_id", "id must be a positive integer")
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "bad_request", "invalid request body")
	}

	err = h.service.Rename(c.Request().Context(), sessionFrom(c).UserID, categoryID, req.Name)
	if err != nil {
		if errors.Is(err, app.ErrCategoryNotFound) {
			return notFound(c, "category not found")
		}
		if mapped := categoryValidationError(c, err); mapped != nil {
			return mapped
		}
		return internalError(c, "failed to rename category")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "category renamed"}})
}

func categoryValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCategoryName):
		return badRequest(c, "invalid_category_name", "name must be 1-50 characters")
	case errors.Is(err, domain.ErrDuplicateCategory):
		return fail(c, http.StatusConflict, "duplicate_category", "a category with this name already exists")
	}
	return nil
}
