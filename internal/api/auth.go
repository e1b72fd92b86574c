package api

import (
	"net/http" // HTTP status codes

	"github.com/Apisit250aps/transactions/internal/service"    // Business services
	"github.com/Apisit250aps/transactions/internal/validation" // Input DTOs

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterHandler creates a new user with its default wallet
func RegisterHandler(svc *service.AuthService, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.RegisterInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "Invalid request body")
			return
		}
		// Delegate to the registration service
		if err := svc.Register(c.Request.Context(), req); err != nil {
			fail(c, isProd, err, "User not found")
			return
		}
		// Return success response, no payload (registration does not auto-login)
		respond(c, http.StatusCreated, "Create user successfully!", nil)
	}
}

// LoginHandler authenticates a user and returns a bearer token
func LoginHandler(svc *service.AuthService, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.LoginInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			badRequest(c, "Invalid request body")
			return
		}
		// Verify credentials and issue the token
		token, user, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			fail(c, isProd, err, "User not found")
			return
		}
		// Return the token and the user (password hash never serialized)
		respond(c, http.StatusOK, "Login successfully!", gin.H{
			"token": token, // Signed bearer token
			"user":  user,  // Authenticated user
		})
	}
}
