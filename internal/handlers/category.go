package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/logging"
	"github.com/mkohler/webshop/internal/models"
	"github.com/mkohler/webshop/internal/repo"
)

type CategoryHandler struct {
	Repo *repo.GormRepo
}

func (h *CategoryHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category_create")

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "name is required"})
	}

	if existing, err := h.Repo.CategoryByName(ctx, req.Name); err == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"message":  "category already exists",
			"category": existing,
		})
	} else if !errors.Is(err, repo.ErrNotFound) {
		l.Error("category_create_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error in category"})
	}

	cat := models.Category{Name: req.Name, Slug: slug.Make(req.Name)}
	if err := h.Repo.CreateCategory(ctx, &cat); err != nil {
		l.Error("category_create_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error in category"})
	}

	l.Info("category_created", "categoryID", cat.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"message":  "new category created",
		"category": cat,
	})
}

func (h *CategoryHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category_update")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "name is required"})
	}

	cat := models.Category{ID: uint(id), Name: req.Name, Slug: slug.Make(req.Name)}
	if err := h.Repo.UpdateCategory(ctx, &cat); err != nil {
		l.Error("category_update_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while updating category"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "category updated successfully",
		"category": cat,
	})
}

func (h *CategoryHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	cats, err := h.Repo.Categories(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("category_list_failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while getting all categories"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "all categories list",
		"category": cats,
	})
}

func (h *CategoryHandler) Single(c echo.Context) error {
	ctx := c.Request().Context()

	cat, err := h.Repo.CategoryBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "category not found"})
		}
		logging.FromContext(ctx).Error("category_single_failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while getting single category"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "get single category successfully",
		"category": cat,
	})
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category_delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}

	if err := h.Repo.DeleteCategory(ctx, uint(id)); err != nil {
		l.Error("category_delete_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while deleting category"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "category deleted successfully",
	})
}
