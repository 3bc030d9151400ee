package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"inventory_backend/internal/apperrors"
	"inventory_backend/models"
	"inventory_backend/repository"
)

// CreateProductInput carries the fields for a new catalog entry. Image
// is the stored file reference produced by the upload step. Price is a
// pointer so an absent field can be told apart from an explicit 0.
type CreateProductInput struct {
	Name        string
	Price       *decimal.Decimal
	Description string
	Image       string
	Stock       int
	Category    string
}

// UpdateProductInput carries a partial update. Name, Price, Description,
// Image and Category only replace the stored value when non-empty /
// non-zero; Stock replaces it whenever the field was present in the
// request, including an explicit 0 — hence the pointer.
type UpdateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Image       string
	Stock       *int
	Category    string
}

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create persists a new product. The image reference is mandatory;
// stock defaults to 0 when unset.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if in.Image == "" {
		return nil, apperrors.Invalid("product image is required")
	}
	if in.Name == "" {
		return nil, apperrors.Invalid("product name is required")
	}
	if in.Category == "" {
		return nil, apperrors.Invalid("product category is required")
	}
	if in.Price == nil {
		return nil, apperrors.Invalid("product price is required")
	}
	if in.Price.IsNegative() {
		return nil, apperrors.Invalid("product price must not be negative")
	}
	if in.Stock < 0 {
		return nil, apperrors.Invalid("product stock must not be negative")
	}

	product := &models.Product{
		Name:        in.Name,
		Price:       *in.Price,
		Description: in.Description,
		Image:       in.Image,
		Stock:       in.Stock,
		Category:    in.Category,
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Internal("could not create product", err)
	}
	return product, nil
}

// GetAll returns the whole catalog, unfiltered.
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("could not fetch products", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal("could not fetch product", err)
	}
	return product, nil
}

// Update applies a partial update to an existing product. Empty or zero
// values for name, price, description, image and category leave the
// stored value untouched; stock is applied whenever present, so an
// explicit 0 sticks. Callers depend on exactly this asymmetry.
func (s *ProductService) Update(ctx context.Context, id uint, in UpdateProductInput) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("product not found")
		}
		return nil, apperrors.Internal("could not fetch product", err)
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if !in.Price.IsZero() {
		if in.Price.IsNegative() {
			return nil, apperrors.Invalid("product price must not be negative")
		}
		product.Price = in.Price
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Image != "" {
		product.Image = in.Image
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, apperrors.Invalid("product stock must not be negative")
		}
		product.Stock = *in.Stock
	}
	if in.Category != "" {
		product.Category = in.Category
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, apperrors.Internal("could not update product", err)
	}
	return product, nil
}

// Delete removes the product permanently. Orders referencing it keep
// their now-dangling reference.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.products.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("product not found")
		}
		return apperrors.Internal("could not delete product", err)
	}
	return nil
}

// CheckStock returns every product whose stock is below the low-stock
// threshold.
func (s *ProductService) CheckStock(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindLowStock(ctx, models.LowStockThreshold)
	if err != nil {
		return nil, apperrors.Internal("could not check stock levels", err)
	}
	return products, nil
}
