package wallet_api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chari-wallet-mock/internal/config"
	"github.com/chari-wallet-mock/internal/wallet_api/handler"
	"github.com/chari-wallet-mock/internal/wallet_api/middleware"
)

// setupRouter configures API routes and middleware for the application.
// Every route is defined exactly once, here.
func setupRouter(
	logger *slog.Logger,
	cfg *config.Config,
	r *gin.Engine,
	customerHandler *handler.CustomerHandler,
	transactionHandler *handler.TransactionHandler,
	operationHandler *handler.OperationHandler,
	beneficiaryHandler *handler.BeneficiaryHandler,
) {
	// RequestID must run before Logger so the request log line carries the id
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.Default())

	// Health check endpoint for monitoring; the only route outside the
	// API key check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	// Anything unregistered answers an explicit 501 naming the missed
	// route, so integration suites see immediately which call the mock
	// does not cover yet
	r.NoRoute(func(c *gin.Context) {
		handler.RespondNotImplemented(c, c.Request.Method, c.Request.URL.Path)
	})

	api := r.Group("", middleware.APIKey(logger, cfg.Auth.APIKeys))
	{
		// Customer lifecycle and wallet operations
		customers := api.Group("/customers")
		{
			customers.POST("/register", customerHandler.Register)
			customers.POST("/confirm", customerHandler.Confirm)
			customers.POST("/pin", customerHandler.CreatePIN)
			customers.POST("/login", customerHandler.Login)
			customers.GET("/status", customerHandler.Status)
			customers.GET("/balance", customerHandler.Balance)
			customers.DELETE("", customerHandler.Unregister)
			customers.GET("/transactions", transactionHandler.List)
			customers.GET("/transactions/:id", transactionHandler.GetByID)
		}

		// Wallet-to-wallet transfers
		api.POST("/transfers", customerHandler.Transfer)

		// Operation view of transaction histories
		operations := api.Group("/operations")
		{
			operations.GET("", operationHandler.List)
			operations.GET("/:id", operationHandler.GetByID)
		}

		// Saved transfer destinations
		beneficiaries := api.Group("/beneficiaries")
		{
			beneficiaries.GET("", beneficiaryHandler.List)
			beneficiaries.POST("", beneficiaryHandler.Create)
		}
	}
}
