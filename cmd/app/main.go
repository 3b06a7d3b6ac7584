package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"substore/cmd/fx/account_fx"
	"substore/cmd/fx/db_fx"
	"substore/cmd/fx/memcache_fx"
	"substore/cmd/fx/payment_fx"
	"substore/cmd/fx/product_fx"
	"substore/cmd/fx/subscription_fx"
	"substore/internal/api/controllers"
	"substore/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		product_fx.Module,
		payment_fx.Module,
		subscription_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "3100"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	productController *controllers.ProductController,
	paymentController *controllers.PaymentController,
	subscriptionController *controllers.SubscriptionController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, productController, paymentController, subscriptionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	productController *controllers.ProductController,
	paymentController *controllers.PaymentController,
	subscriptionController *controllers.SubscriptionController) {

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	accountGroup := r.Group("/accounts", middleware.JWTAuthMiddleware())
	accountGroup.GET("/me", accountController.GetProfile)
	accountGroup.PATCH("/me", accountController.UpdateProfile)

	productGroup := r.Group("/products")
	productGroup.GET("", productController.ListProducts)
	productGroup.GET("/:slug", productController.GetProductBySlug)

	payuGroup := r.Group("/api/payu")
	payuGroup.POST("/initiate", paymentController.InitiatePayment)
	payuGroup.POST("/checkout", paymentController.CheckoutForm)

	// Gateway redirect targets; PayU posts the outcome fields back to these.
	r.POST("/payment-success", subscriptionController.PaymentSuccess)
	r.GET("/payment-success", subscriptionController.PaymentSuccess)
	r.POST("/payment-failure", subscriptionController.PaymentFailure)
	r.GET("/payment-failure", subscriptionController.PaymentFailure)

	subscriptionGroup := r.Group("/subscriptions", middleware.JWTAuthMiddleware())
	subscriptionGroup.GET("", subscriptionController.ListSubscriptions)
	subscriptionGroup.POST("/:id/cancel", subscriptionController.CancelSubscription)
}
