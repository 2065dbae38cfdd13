package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/events"
	"github.com/mkohler/webshop/internal/logging"
	"github.com/mkohler/webshop/internal/models"
	"github.com/mkohler/webshop/internal/repo"
	"github.com/mkohler/webshop/internal/util"
)

type ProductHandler struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    uint    `json:"quantity"`
	CategoryID  uint    `json:"category_id"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_create")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "name is required"})
	}

	prod := models.Product{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
	}
	if err := h.Repo.CreateProduct(ctx, &prod); err != nil {
		l.Error("product_create_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error in creating product"})
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	l.Info("product_created", "productID", prod.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "product created successfully",
		"product": prod,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_update")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	prod, err := h.Repo.ProductByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "product not found"})
		}
		l.Error("product_update_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error in updating product"})
	}

	prod.Name = req.Name
	prod.Slug = slug.Make(req.Name)
	prod.Description = req.Description
	prod.Price = req.Price
	prod.Quantity = req.Quantity
	prod.CategoryID = req.CategoryID

	if err := h.Repo.UpdateProduct(ctx, prod); err != nil {
		l.Error("product_update_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error in updating product"})
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "product updated successfully",
		"product": prod,
	})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}

	if err := h.Repo.DeleteProduct(ctx, uint(id)); err != nil {
		l.Error("product_delete_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while deleting product"})
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "product deleted successfully",
	})
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	prods, total, err := h.Repo.Products(ctx, offset, limit)
	if err != nil {
		logging.FromContext(ctx).Error("product_list_failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error in getting products"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "all products",
		"products": prods,
		"meta": echo.Map{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ProductHandler) Single(c echo.Context) error {
	ctx := c.Request().Context()

	prod, err := h.Repo.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "product not found"})
		}
		logging.FromContext(ctx).Error("product_single_failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while getting single product"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "single product fetched",
		"product": prod,
	})
}
