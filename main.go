package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventory_backend/config"
	"inventory_backend/handlers"
	"inventory_backend/middleware"
	"inventory_backend/repository"
	"inventory_backend/services"
	"inventory_backend/utils"
)

func setupApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Inventory and Order Management System",
		ServerHeader: "Inventory Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"message": msg,
			})
		},
	})

	middleware.Setup(app)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)

	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, cfg.JWTExpiration)
	productHandler := handlers.NewProductHandler(productService, cfg.UploadDir)
	orderHandler := handlers.NewOrderHandler(orderService)

	authRequired := utils.NewAuthMiddleware(cfg.JWTSecret)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Uploaded product images
	app.Static("/uploads", "./uploads")

	api := app.Group("/api/v1")

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	products := api.Group("/products")
	products.Get("/", productHandler.GetProducts)
	// Registered before /:id so "inventory" is not parsed as a product id
	products.Get("/inventory/low-stock", authRequired, utils.RequireAdmin, productHandler.CheckStock)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/add", authRequired, utils.RequireAdmin, productHandler.CreateProduct)
	products.Put("/:id", authRequired, utils.RequireAdmin, productHandler.UpdateProduct)
	products.Delete("/:id", authRequired, utils.RequireAdmin, productHandler.DeleteProduct)

	orders := api.Group("/orders")
	orders.Post("/add", authRequired, orderHandler.PlaceOrder)
	orders.Get("/my-orders", authRequired, orderHandler.GetMyOrders)
	orders.Get("/admin", authRequired, utils.RequireAdmin, orderHandler.GetAllOrders)
	orders.Put("/admin/:id", authRequired, utils.RequireAdmin, orderHandler.UpdateOrderStatus)

	middleware.SetupNotFoundHandler(app)

	return app
}

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	app := setupApp(db, cfg)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
