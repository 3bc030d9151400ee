package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"inventory_backend/services"
)

type ProductHandler struct {
	service   *services.ProductService
	uploadDir string
}

func NewProductHandler(service *services.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{service: service, uploadDir: uploadDir}
}

// GetProducts - GET /api/v1/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetProduct - GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	product, err := h.service.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// CreateProduct - POST /api/v1/products/add (multipart, admin)
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var in services.CreateProductInput

	image, err := saveImageFile(c, h.uploadDir)
	if err != nil && !errors.Is(err, errNoImageFile) {
		return respondError(c, err)
	}
	in.Image = image // empty when absent; the service rejects that

	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	in.Category = c.FormValue("category")

	// Absent field stays nil; an explicit "0" is a valid price.
	if v := c.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid price"})
		}
		in.Price = &price
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid stock"})
		}
		in.Stock = stock
	}

	product, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct - PUT /api/v1/products/:id (multipart, admin)
//
// Partial update: name, price, description, image and category only
// replace the stored value when non-empty; stock is applied whenever
// the field is present, so sending "0" sets stock to zero.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	var in services.UpdateProductInput

	image, err := saveImageFile(c, h.uploadDir)
	if err != nil && !errors.Is(err, errNoImageFile) {
		return respondError(c, err)
	}
	if image != "" {
		in.Image = image
	} else {
		in.Image = c.FormValue("image")
	}

	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	in.Category = c.FormValue("category")

	if v := c.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid price"})
		}
		in.Price = price
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid stock"})
		}
		in.Stock = &stock
	}

	product, err := h.service.Update(c.UserContext(), uint(id), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct - DELETE /api/v1/products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// CheckStock - GET /api/v1/products/inventory/low-stock (admin)
func (h *ProductHandler) CheckStock(c *fiber.Ctx) error {
	products, err := h.service.CheckStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Low-stock products",
		"products": products,
	})
}
