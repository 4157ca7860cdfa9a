package api

import (
	"time"

	"shopora-be/internal/auth"
	"shopora-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Product      *ProductHandler
	AdminProduct *AdminProductHandler
	Cart         *CartHandler
	Address      *AddressHandler
	Order        *OrderHandler
	Review       *ReviewHandler
	Feature      *FeatureHandler
}

// NewRouter wires the full route table. corsOrigin is the storefront's
// origin; cookies only flow when it is exact, not a wildcard.
func NewRouter(h Handlers, manager *auth.Manager, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.RateLimit())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Cache-Control", "Expires", "Pragma"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.RequireAuth(manager)
	adminRequired := middleware.RequireAdmin()

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/check-auth", authRequired, h.Auth.CheckAuth)
	}

	adminProducts := r.Group("/api/admin/products", authRequired, adminRequired)
	{
		adminProducts.GET("/get", h.AdminProduct.List)
		adminProducts.POST("/add", h.AdminProduct.Add)
		adminProducts.PUT("/edit/:id", h.AdminProduct.Edit)
		adminProducts.DELETE("/delete/:id", h.AdminProduct.Delete)
		adminProducts.POST("/upload-image", h.AdminProduct.UploadImage)
	}

	adminOrders := r.Group("/api/admin/orders", authRequired, adminRequired)
	{
		adminOrders.GET("/get", h.Order.ListAll)
		adminOrders.GET("/details/:id", h.Order.AdminDetails)
		adminOrders.PUT("/update/:id", h.Order.UpdateStatus)
	}

	shop := r.Group("/api/shop", authRequired)
	{
		shop.GET("/products/get", h.Product.List)
		shop.GET("/products/get/:id", h.Product.Get)

		shop.POST("/cart/add", h.Cart.Add)
		shop.GET("/cart/get/:userId", h.Cart.Get)
		shop.PUT("/cart/update-cart", h.Cart.Update)
		shop.DELETE("/cart/:userId/:productId", h.Cart.Remove)

		shop.POST("/address/add", h.Address.Add)
		shop.GET("/address/get/:userId", h.Address.List)
		shop.PUT("/address/update/:userId/:addressId", h.Address.Update)
		shop.DELETE("/address/delete/:userId/:addressId", h.Address.Delete)

		shop.POST("/order/create", h.Order.Create)
		shop.POST("/order/capture", h.Order.Capture)
		shop.GET("/order/list/:userId", h.Order.ListByUser)
		shop.GET("/order/details/:id", h.Order.Details)

		shop.POST("/review/add", h.Review.Add)
		shop.GET("/review/:productId", h.Review.ListByProduct)

		shop.GET("/search/:keyword", h.Product.Search)
	}

	feature := r.Group("/api/common/feature")
	{
		feature.POST("/add", authRequired, adminRequired, h.Feature.Add)
		feature.GET("/get", h.Feature.List)
	}

	return r
}
