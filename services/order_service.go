// Package services implements the order placement, order query and
// product management operations over the repository interfaces.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"inventory_backend/internal/apperrors"
	"inventory_backend/models"
	"inventory_backend/repository"
)

// OrderItemInput is one cart line: a product reference and a quantity.
type OrderItemInput struct {
	ProductID uint `json:"product"`
	Quantity  int  `json:"quantity"`
}

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// PlaceOrder validates the cart, totals it with each product's price at
// call time and persists a new Pending order. All-or-nothing: any
// missing product aborts before anything is written. Stock is not
// debited on placement.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.Invalid("no items in the order")
	}

	totalPrice := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, apperrors.Invalid("quantity must be a positive integer")
		}

		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.NotFound("product not found: %d", item.ProductID)
			}
			return nil, apperrors.Internal("could not look up product", err)
		}

		totalPrice = totalPrice.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		UserID:     userID,
		OrderItems: orderItems,
		TotalPrice: totalPrice,
		Status:     models.OrderStatusPending,
		OrderDate:  time.Now(),
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.Internal("could not place order", err)
	}
	return order, nil
}

// GetCustomerOrders returns every order placed by the given user.
func (s *OrderService) GetCustomerOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("could not fetch orders", err)
	}
	return orders, nil
}

// GetAllOrders returns every order in the store.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("could not fetch orders", err)
	}
	return orders, nil
}

// UpdateStatus sets the order's status when one is given. An empty
// status leaves the order unchanged and is not an error. Status is the
// only mutable order field.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, apperrors.Internal("could not look up order", err)
	}

	if status == "" {
		return order, nil
	}
	if !status.Valid() {
		return nil, apperrors.Invalid("invalid order status: %s", status)
	}

	order.Status = status
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, apperrors.Internal("could not update order status", err)
	}
	return order, nil
}
