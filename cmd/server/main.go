package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/Apisit250aps/transactions/internal/api"     // Custom package for HTTP handlers
	"github.com/Apisit250aps/transactions/internal/config"  // Custom package for configuration
	"github.com/Apisit250aps/transactions/internal/service" // Custom package for business services
	"github.com/Apisit250aps/transactions/internal/store"   // Custom package for persistence

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; TranslateError maps duplicate-key failures
	// onto gorm.ErrDuplicatedKey so the store can detect name conflicts
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the persistence port and the services
	st := store.NewGormStore(db)                      // GORM-backed store
	walletSvc := service.NewWalletService(st)         // Wallet resolution and ownership
	authSvc := service.NewAuthService(st, cfg.JWTSecret) // Registration and login
	txSvc := service.NewTransactionService(st, walletSvc) // Transaction ledger

	// Mount the routes
	router := &api.Router{
		Auth:         authSvc,       // Registration and login handlers
		Transactions: txSvc,         // Transaction handlers
		Redis:        redisClient,   // List cache
		JWTSecret:    cfg.JWTSecret, // Bearer verification key
		IsProd:       cfg.IsProd,    // Hide error detail in production
	}
	r := router.Engine() // Gin engine with all routes

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
