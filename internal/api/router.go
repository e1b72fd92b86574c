package api

import (
	"github.com/Apisit250aps/transactions/internal/middleware" // JWT middleware
	"github.com/Apisit250aps/transactions/internal/service"    // Business services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Router bundles everything the HTTP layer needs
type Router struct {
	Auth         *service.AuthService        // Registration and login
	Transactions *service.TransactionService // Transaction ledger
	Redis        *redis.Client               // List cache, nil disables caching
	JWTSecret    string                      // Bearer token verification key
	IsProd       bool                        // Production hides error detail
}

// Engine mounts all routes on a gin engine
func (r *Router) Engine() *gin.Engine {
	e := gin.Default() // Gin router instance

	// Auth routes (public)
	auth := e.Group("/api/auth")
	auth.POST("/register", RegisterHandler(r.Auth, r.IsProd)) // Registration endpoint
	auth.POST("/login", LoginHandler(r.Auth, r.IsProd))       // Login endpoint

	// Transaction routes (protected by JWT)
	tx := e.Group("/api/transaction")
	tx.Use(middleware.JWTAuthMiddleware(r.JWTSecret)) // Protect with bearer verification
	tx.POST("", CreateTransactionHandler(r.Transactions, r.Redis, r.IsProd))       // Create endpoint
	tx.GET("", ListTransactionsHandler(r.Transactions, r.Redis, r.IsProd))         // Paginated list endpoint
	tx.GET("/:id", GetTransactionHandler(r.Transactions, r.IsProd))                // Single read endpoint
	tx.PUT("/:id", UpdateTransactionHandler(r.Transactions, r.Redis, r.IsProd))    // Partial update endpoint
	tx.DELETE("/:id", DeleteTransactionHandler(r.Transactions, r.Redis, r.IsProd)) // Delete endpoint

	return e
}
