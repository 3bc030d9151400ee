package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventory_backend/config"
	"inventory_backend/models"
	"inventory_backend/utils"
)

const testJWTSecret = "e2e-test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := config.ConnectDatabase(filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	cfg := &config.Config{
		JWTSecret:     testJWTSecret,
		JWTExpiration: time.Hour,
		UploadDir:     t.TempDir(),
	}
	return setupApp(db, cfg), db
}

func tokenFor(t *testing.T, db *gorm.DB, name, email, role string) string {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(&user, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func jsonRequest(method, target, token string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// multipartRequest builds a product create/update request with the given
// form fields and, when withImage is set, a small png form file.
func multipartRequest(t *testing.T, method, target, token string, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "product.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nfake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/register", "", fiber.Map{
		"name":     "Customer One",
		"email":    "c1@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/login", "", fiber.Map{
		"email":    "c1@example.com",
		"password": "secret123",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, models.RoleCustomer, body.User.Role)

	// Wrong password
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/login", "", fiber.Map{
		"email":    "c1@example.com",
		"password": "wrong",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductRoutesRequireAdmin(t *testing.T) {
	app, db := newTestApp(t)
	customer := tokenFor(t, db, "Customer", "cust@example.com", models.RoleCustomer)

	resp, err := app.Test(multipartRequest(t, http.MethodPost, "/api/v1/products/add", "", nil, false), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(multipartRequest(t, http.MethodPost, "/api/v1/products/add", customer, nil, false), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCreateProductMissingPriceRejected(t *testing.T) {
	app, db := newTestApp(t)
	admin := tokenFor(t, db, "Admin", "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(multipartRequest(t, http.MethodPost, "/api/v1/products/add", admin, map[string]string{
		"name":     "Desk Lamp",
		"stock":    "3",
		"category": "home",
	}, true), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing was persisted.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/products", "", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decodeBody(t, resp, &products)
	assert.Empty(t, products)
}

func TestInventoryOrderFlow(t *testing.T) {
	app, db := newTestApp(t)
	admin := tokenFor(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	customer := tokenFor(t, db, "Customer", "cust@example.com", models.RoleCustomer)

	// Create a product with stock 3.
	resp, err := app.Test(multipartRequest(t, http.MethodPost, "/api/v1/products/add", admin, map[string]string{
		"name":     "Mechanical Keyboard",
		"price":    "89.90",
		"stock":    "3",
		"category": "electronics",
	}, true), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Product models.Product `json:"product"`
	}
	decodeBody(t, resp, &created)
	productID := created.Product.ID
	require.NotZero(t, productID)
	assert.Equal(t, 3, created.Product.Stock)
	assert.NotEmpty(t, created.Product.Image)

	// Stock 3 < 5: the low-stock report must include it.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/products/inventory/low-stock", admin, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lowStock struct {
		Products []models.Product `json:"products"`
	}
	decodeBody(t, resp, &lowStock)
	require.Len(t, lowStock.Products, 1)
	assert.Equal(t, productID, lowStock.Products[0].ID)

	// Place an order for 2 units.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/orders/add", customer, fiber.Map{
		"orderItems": []fiber.Map{{"product": productID, "quantity": 2}},
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var placed struct {
		Order models.Order `json:"order"`
	}
	decodeBody(t, resp, &placed)
	require.NotZero(t, placed.Order.ID)
	assert.Equal(t, "179.8", placed.Order.TotalPrice.String(), "total = 2 x 89.90")
	assert.Equal(t, models.OrderStatusPending, placed.Order.Status)

	// Stock is not debited by order placement.
	resp, err = app.Test(jsonRequest(http.MethodGet, fmt.Sprintf("/api/v1/products/%d", productID), "", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.Product
	decodeBody(t, resp, &fetched)
	assert.Equal(t, 3, fetched.Stock)

	// The customer sees the order with the product resolved for display.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/orders/my-orders", customer, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var myOrders []models.Order
	decodeBody(t, resp, &myOrders)
	require.Len(t, myOrders, 1)
	require.Len(t, myOrders[0].OrderItems, 1)
	require.NotNil(t, myOrders[0].OrderItems[0].Product)
	assert.Equal(t, "Mechanical Keyboard", myOrders[0].OrderItems[0].Product.Name)

	// Admin updates the status.
	resp, err = app.Test(jsonRequest(http.MethodPut, fmt.Sprintf("/api/v1/orders/admin/%d", placed.Order.ID), admin, fiber.Map{
		"status": "Shipped",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Order models.Order `json:"order"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, models.OrderStatusShipped, updated.Order.Status)

	// No status in the body: the order is returned unchanged.
	resp, err = app.Test(jsonRequest(http.MethodPut, fmt.Sprintf("/api/v1/orders/admin/%d", placed.Order.ID), admin, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &updated)
	assert.Equal(t, models.OrderStatusShipped, updated.Order.Status)

	// Unknown order id.
	resp, err = app.Test(jsonRequest(http.MethodPut, "/api/v1/orders/admin/9999", admin, fiber.Map{
		"status": "Shipped",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductUpdateFormSemantics(t *testing.T) {
	app, db := newTestApp(t)
	admin := tokenFor(t, db, "Admin", "admin@example.com", models.RoleAdmin)

	resp, err := app.Test(multipartRequest(t, http.MethodPost, "/api/v1/products/add", admin, map[string]string{
		"name":     "Desk Lamp",
		"price":    "19.50",
		"stock":    "12",
		"category": "home",
	}, true), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Product models.Product `json:"product"`
	}
	decodeBody(t, resp, &created)

	// stock=0 is an explicit update; price=0 means "unchanged".
	resp, err = app.Test(multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", created.Product.ID), admin, map[string]string{
		"stock": "0",
		"price": "0",
	}, false), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Product models.Product `json:"product"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, 0, updated.Product.Stock)
	assert.Equal(t, "19.5", updated.Product.Price.String())
}

func TestPlaceOrderValidation(t *testing.T) {
	app, db := newTestApp(t)
	customer := tokenFor(t, db, "Customer", "cust@example.com", models.RoleCustomer)

	// Empty cart.
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/orders/add", customer, fiber.Map{
		"orderItems": []fiber.Map{},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown product reference.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/orders/add", customer, fiber.Map{
		"orderItems": []fiber.Map{{"product": 424242, "quantity": 1}},
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Nothing was persisted.
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/v1/orders/my-orders", customer, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var myOrders []models.Order
	decodeBody(t, resp, &myOrders)
	assert.Empty(t, myOrders)
}
