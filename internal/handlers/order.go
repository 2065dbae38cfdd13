package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkohler/webshop/internal/events"
	"github.com/mkohler/webshop/internal/logging"
	mwauth "github.com/mkohler/webshop/internal/middleware/auth"
	"github.com/mkohler/webshop/internal/models"
	"github.com/mkohler/webshop/internal/repo"
)

type OrderHandler struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

var validStatuses = map[string]struct{}{
	models.OrderNotProcessed: {},
	models.OrderProcessing:   {},
	models.OrderShipped:      {},
	models.OrderDelivered:    {},
	models.OrderCancelled:    {},
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_create")

	buyerID, ok := mwauth.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": mwauth.MsgUnauthorized})
	}

	var req struct {
		Items []struct {
			ProductID uint `json:"product_id"`
			Quantity  uint `json:"quantity"`
		} `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "order has no items"})
	}

	order := models.Order{
		Reference: uuid.NewString(),
		BuyerID:   buyerID,
		Status:    models.OrderNotProcessed,
	}
	for _, it := range req.Items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		prod, err := h.Repo.ProductByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "unknown product in order"})
			}
			l.Error("order_create_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while creating order"})
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: prod.ID,
			Quantity:  qty,
			Price:     prod.Price,
		})
	}

	if err := h.Repo.CreateOrder(ctx, &order); err != nil {
		l.Error("order_create_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while creating order"})
	}

	event := map[string]interface{}{
		"type":      "order_placed",
		"orderID":   order.ID,
		"reference": order.Reference,
		"buyerID":   buyerID,
	}
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(order.ID), event); err != nil {
		l.Error("publish_failed", "topic", events.TopicOrderEvents, "error", err)
	}

	l.Info("order_created", "orderID", order.ID, "buyerID", buyerID)
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "order placed successfully",
		"order":   order,
	})
}

func (h *OrderHandler) MyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	buyerID, ok := mwauth.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": mwauth.MsgUnauthorized})
	}

	orders, err := h.Repo.OrdersByBuyer(ctx, buyerID)
	if err != nil {
		logging.FromContext(ctx).Error("orders_list_failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while getting orders"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "orders list",
		"orders":  orders,
	})
}

func (h *OrderHandler) AllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Repo.AllOrders(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("all_orders_failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while getting orders"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "all orders list",
		"orders":  orders,
	})
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_status")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if _, ok := validStatuses[req.Status]; !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid order status"})
	}

	order, err := h.Repo.UpdateOrderStatus(ctx, uint(id), req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "order not found"})
		}
		l.Error("order_status_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "error while updating order"})
	}

	event := map[string]interface{}{
		"type":    "order_status_changed",
		"orderID": order.ID,
		"status":  req.Status,
	}
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(order.ID), event); err != nil {
		l.Error("publish_failed", "topic", events.TopicOrderEvents, "error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "order status updated",
		"order":   order,
	})
}
