// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rrtraders/rr-backend/internal/config"
	"github.com/rrtraders/rr-backend/internal/handlers"
	"github.com/rrtraders/rr-backend/internal/middleware"
	"github.com/rrtraders/rr-backend/internal/services"
	"github.com/rrtraders/rr-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	authService := services.NewAuthService(db, cfg)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	bannerService := services.NewBannerService(db)
	paymentService := services.NewPaymentService(db, cfg)
	orderService := services.NewOrderService(db, cfg, paymentService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, storageService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	bannerHandler := handlers.NewBannerHandler(bannerService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService, storageService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Route prefixes below mirror the storefront's existing client,
		// which is why orders live under /payment and banners under
		// /media.
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
			auth.POST("/register", middleware.AuthRateLimit(), authHandler.Register)
			auth.POST("/admin/login", middleware.AuthRateLimit(), authHandler.AdminLogin)
			auth.GET("/admin/protect/admin/dashboard",
				middleware.AuthRequired(), middleware.AdminRequired(), authHandler.Dashboard)
			auth.GET("/users",
				middleware.AuthRequired(), middleware.AdminRequired(), authHandler.GetUsers)
		}

		category := api.Group("/category")
		{
			category.GET("/categories", middleware.OptionalAuth(), categoryHandler.GetCategories)
			category.GET("/categories/:id", middleware.OptionalAuth(), categoryHandler.GetCategory)

			adminCategory := category.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminCategory.POST("/categories", middleware.UploadRateLimit(), categoryHandler.CreateCategory)
				adminCategory.PUT("/categories/:id", middleware.UploadRateLimit(), categoryHandler.UpdateCategory)
				adminCategory.DELETE("/categories/:id", categoryHandler.DeleteCategory)
			}
		}

		products := api.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			adminProducts := products.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminProducts.POST("", middleware.UploadRateLimit(), productHandler.CreateProduct)
				adminProducts.PUT("/:id", middleware.UploadRateLimit(), productHandler.UpdateProduct)
				adminProducts.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		media := api.Group("/media")
		{
			media.GET("/banners", middleware.OptionalAuth(), bannerHandler.GetBanners)
			media.GET("/banner/:id", middleware.OptionalAuth(), bannerHandler.GetBanner)

			adminMedia := media.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminMedia.POST("/banner", middleware.UploadRateLimit(), bannerHandler.CreateBanner)
				adminMedia.PUT("/banner/:id", middleware.UploadRateLimit(), bannerHandler.UpdateBanner)
				adminMedia.DELETE("/banner/:id", bannerHandler.DeleteBanner)
			}
		}

		payment := api.Group("/payment")
		{
			payment.POST("/create", middleware.CheckoutRateLimit(), orderHandler.CreateOrder)
			payment.POST("/confirm", middleware.CheckoutRateLimit(), paymentHandler.ConfirmPayment)

			adminPayment := payment.Group("", middleware.AuthRequired(), middleware.AdminRequired())
			{
				adminPayment.GET("", orderHandler.GetOrders)
				adminPayment.GET("/stats", orderHandler.GetStats)
				adminPayment.GET("/:id", orderHandler.GetOrder)
				adminPayment.PUT("/:id", orderHandler.UpdateOrder)
				adminPayment.DELETE("/:id", orderHandler.DeleteOrder)
			}
		}
	}

	return r
}
