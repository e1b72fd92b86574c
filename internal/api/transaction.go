package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"github.com/Apisit250aps/transactions/internal/domain"     // Domain models
	"github.com/Apisit250aps/transactions/internal/service"    // Business services
	"github.com/Apisit250aps/transactions/internal/utils"      // Redis cache helpers
	"github.com/Apisit250aps/transactions/internal/validation" // Input DTOs

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// listCacheTTL is how long a cached transaction page stays fresh
const listCacheTTL = 60 * time.Second

// listCacheKey builds the cache key for one page of a user's transactions
func listCacheKey(userID string, page, limit int) string {
	return "txlist:user:" + userID + ":page:" + strconv.Itoa(page) + ":limit:" + strconv.Itoa(limit)
}

// invalidateListCache drops the cached list pages of a user after a mutation
// (simple version: delete the first 5 pages at the default limit)
func invalidateListCache(c *gin.Context, rdb *redis.Client, userID string) {
	if rdb == nil {
		return // Caching disabled
	}
	ctx := c.Request.Context() // Context for Redis operations
	for page := 1; page <= 5; page++ {
		_ = utils.DeleteCache(ctx, rdb, listCacheKey(userID, page, service.DefaultLimit))
	}
}

// CreateTransactionHandler records a new transaction for the caller
func CreateTransactionHandler(svc *service.TransactionService, rdb *redis.Client, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")      // Authenticated caller
		var req validation.TransactionInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "Invalid request body")
			return
		}
		// Delegate to the transaction service
		tx, err := svc.Create(c.Request.Context(), userID, req)
		if err != nil {
			fail(c, isProd, err, "Wallet not found")
			return
		}
		invalidateListCache(c, rdb, userID) // New row changes every list page
		// Return the created transaction
		respond(c, http.StatusCreated, "Create transaction successfully!", tx)
	}
}

// ListTransactionsHandler returns one page of the caller's transactions,
// newest first, with pagination metadata
func ListTransactionsHandler(svc *service.TransactionService, rdb *redis.Client, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID") // Authenticated caller
		page := service.DefaultPage     // Default page
		limit := service.DefaultLimit   // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If limit exists in query
		if l := c.Query("limit"); l != "" {
			// Convert limit to integer
			if v, err := strconv.Atoi(l); err == nil && v > 0 {
				limit = v // Set limit if valid
			}
		}
		ctx := c.Request.Context()                 // Request context
		cacheKey := listCacheKey(userID, page, limit) // Cache key for this page
		// Cached page shape
		var cached struct {
			Transactions []domain.Transaction `json:"transactions"` // List of transactions
			Meta         service.PageMeta     `json:"meta"`         // Pagination metadata
		}
		// Try to get from cache
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				// Return cached page
				respond(c, http.StatusOK, "Transactions fetched successfully!", gin.H{
					"transactions": cached.Transactions, // Cached transactions
					"meta":         cached.Meta,         // Pagination metadata
					"cached":       true,                // Served from cache
				})
				return
			}
		}
		// Fetch from the service
		txs, meta, err := svc.List(ctx, userID, page, limit)
		if err != nil {
			fail(c, isProd, err, "Transaction not found")
			return
		}
		// Cache the page for subsequent requests
		if rdb != nil {
			cached.Transactions = txs
			cached.Meta = meta
			_ = utils.SetCache(ctx, rdb, cacheKey, cached, listCacheTTL)
		}
		// Return the page
		respond(c, http.StatusOK, "Transactions fetched successfully!", gin.H{
			"transactions": txs,   // List of transactions
			"meta":         meta,  // Pagination metadata
			"cached":       false, // Not from cache
		})
	}
}

// GetTransactionHandler returns a single transaction owned by the caller
func GetTransactionHandler(svc *service.TransactionService, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID") // Authenticated caller
		// Load with ownership check
		tx, err := svc.Get(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			fail(c, isProd, err, "Transaction not found")
			return
		}
		respond(c, http.StatusOK, "Transaction fetched successfully!", tx)
	}
}

// UpdateTransactionHandler applies a partial update to a transaction
func UpdateTransactionHandler(svc *service.TransactionService, rdb *redis.Client, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")       // Authenticated caller
		var req validation.TransactionUpdate // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "Invalid request body")
			return
		}
		// Delegate to the transaction service
		tx, err := svc.Update(c.Request.Context(), userID, c.Param("id"), req)
		if err != nil {
			fail(c, isProd, err, "Transaction not found")
			return
		}
		invalidateListCache(c, rdb, userID) // Mutated row invalidates cached pages
		respond(c, http.StatusOK, "Update transaction successfully!", tx)
	}
}

// DeleteTransactionHandler permanently removes a transaction
func DeleteTransactionHandler(svc *service.TransactionService, rdb *redis.Client, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID") // Authenticated caller
		// Delete with ownership check; repeat deletes keep reporting not found
		if err := svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
			fail(c, isProd, err, "Transaction not found")
			return
		}
		invalidateListCache(c, rdb, userID) // Removed row invalidates cached pages
		respond(c, http.StatusOK, "Delete transaction successfully!", nil)
	}
}
