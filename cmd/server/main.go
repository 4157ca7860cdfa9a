package main

import (
	"log"

	"shopora-be/internal/address"
	"shopora-be/internal/api"
	"shopora-be/internal/auth"
	"shopora-be/internal/cart"
	"shopora-be/internal/config"
	"shopora-be/internal/db"
	"shopora-be/internal/feature"
	"shopora-be/internal/logger"
	"shopora-be/internal/media"
	"shopora-be/internal/order"
	"shopora-be/internal/payment"
	"shopora-be/internal/product"
	"shopora-be/internal/review"
	"shopora-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewManager(cfg.JWTSecret)
	gateway := payment.NewPayPalGateway(
		cfg.PayPalBaseURL,
		cfg.PayPalClientID,
		cfg.PayPalSecret,
		cfg.ReturnURL,
		cfg.CancelURL,
	)
	uploader := media.NewCloudinaryUploader(
		cfg.CloudinaryCloud,
		cfg.CloudinaryKey,
		cfg.CloudinarySecret,
	)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productRepo, cartRepo, gateway)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo, productRepo)

	featureRepo := feature.NewRepository(database)
	featureSvc := feature.NewService(featureRepo)

	secureCookies := cfg.AppEnv == "production"

	router := api.NewRouter(api.Handlers{
		Auth:         api.NewAuthHandler(userSvc, secureCookies),
		Product:      api.NewProductHandler(productSvc),
		AdminProduct: api.NewAdminProductHandler(productSvc, uploader),
		Cart:         api.NewCartHandler(cartSvc),
		Address:      api.NewAddressHandler(addressSvc),
		Order:        api.NewOrderHandler(orderSvc),
		Review:       api.NewReviewHandler(reviewSvc),
		Feature:      api.NewFeatureHandler(featureSvc),
	}, tokens, cfg.CORSOrigin)

	log.Printf("🚀 server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
