package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the fixed stock level below which a product is
// reported by the low-stock inventory check.
const LowStockThreshold = 5

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Image       string          `gorm:"size:255;not null" json:"image"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Category    string          `gorm:"size:50;index;not null" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsLowStock reports whether the product's stock is below the threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
