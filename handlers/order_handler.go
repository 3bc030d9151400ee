package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventory_backend/models"
	"inventory_backend/services"
)

type OrderHandler struct {
	service *services.OrderService
}

func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// PlaceOrderRequest is the cart payload.
type PlaceOrderRequest struct {
	OrderItems []services.OrderItemInput `json:"orderItems"`
}

// UpdateOrderStatusRequest carries the optional new status.
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// PlaceOrder - POST /api/v1/orders/add (customer)
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	userID := c.Locals("user_id").(uint)

	order, err := h.service.PlaceOrder(c.UserContext(), userID, req.OrderItems)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders - GET /api/v1/orders/my-orders (customer)
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	orders, err := h.service.GetCustomerOrders(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// GetAllOrders - GET /api/v1/orders/admin (admin)
func (h *OrderHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateOrderStatus - PUT /api/v1/orders/admin/:id (admin)
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	// A missing or empty body means "leave the status unchanged", so a
	// parse failure is deliberately not an error here.
	var req UpdateOrderStatusRequest
	_ = c.BodyParser(&req)

	order, err := h.service.UpdateStatus(c.UserContext(), uint(id), req.Status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated",
		"order":   order,
	})
}
