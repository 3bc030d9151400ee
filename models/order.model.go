package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// Valid reports whether s is one of the defined order statuses. Any
// status is reachable from any other; there is no transition graph.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"index;not null" json:"user"`
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID" json:"orderItems"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	Status     OrderStatus     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	OrderDate  time.Time       `json:"orderDate"`

	// Resolved owner for admin listings (id, name, email only).
	User *User `gorm:"foreignKey:UserID" json:"userDetails,omitempty"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	OrderID   uint `gorm:"index;not null" json:"-"`
	ProductID uint `gorm:"index;not null" json:"product"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	// Resolved product for display (id, name, price only). Left nil when
	// the referenced product has been deleted since the order was placed.
	Product *Product `gorm:"foreignKey:ProductID" json:"productDetails,omitempty"`
}
