package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"b2b-showcase-backend/internal/shared/middleware"
	"b2b-showcase-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
	}

	return router
}

// ========================================
// CATALOG ROUTES
// ========================================
// Reads are public; mutations sit behind Firebase auth plus the admin
// allow-list.
func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("", c.CatalogHandler.ListProducts)
		products.GET("/featured", c.CatalogHandler.FeaturedProducts)
		products.GET("/categories", c.CatalogHandler.DistinctCategories)
	}

	adminProducts := v1.Group("/products")
	adminProducts.Use(
		middleware.AuthMiddleware(c.Firebase.Auth),
		middleware.AdminMiddleware(c.Config.Admin.Emails),
	)
	{
		adminProducts.POST("", c.CatalogHandler.AddProduct)
		adminProducts.DELETE("/:id", c.CatalogHandler.RemoveProduct)
		adminProducts.PATCH("/:id/image", c.CatalogHandler.UpdateImage)
		adminProducts.POST("/:id/image/upload", c.CatalogHandler.UploadProductImage)
		adminProducts.PATCH("/:id/featured", c.CatalogHandler.SetFeatured)
		adminProducts.PATCH("/:id/stock", c.CatalogHandler.SetInStock)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", c.CatalogHandler.ListCategories)
	}

	uploads := v1.Group("/uploads")
	uploads.Use(
		middleware.AuthMiddleware(c.Firebase.Auth),
		middleware.AdminMiddleware(c.Config.Admin.Emails),
	)
	{
		uploads.POST("/:folder", c.CatalogHandler.UploadImage)
	}

	adminCategories := v1.Group("/categories")
	adminCategories.Use(
		middleware.AuthMiddleware(c.Firebase.Auth),
		middleware.AdminMiddleware(c.Config.Admin.Emails),
	)
	{
		adminCategories.POST("", c.CatalogHandler.AddCategory)
		adminCategories.DELETE("/:id", c.CatalogHandler.RemoveCategory)
		adminCategories.PATCH("/:id/image", c.CatalogHandler.UpdateCategoryImage)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check Redis
		cacheStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Cache.Ping(ctx); err != nil {
			// Redis down chỉ degraded - catalog vẫn serve từ memory
			cacheStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"cache": cacheStatus,
		}

		c.JSON(http.StatusOK, health)
	}
}
