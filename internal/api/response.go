package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"github.com/Apisit250aps/transactions/internal/service"    // Error taxonomy
	"github.com/Apisit250aps/transactions/internal/validation" // Field error map

	"github.com/gin-gonic/gin" // Gin web framework
)

// Envelope is the uniform response wrapper for every outcome
type Envelope struct {
	Success bool                   `json:"success"`          // Whether the call succeeded
	Message string                 `json:"message"`          // Human-readable summary
	Data    any                    `json:"data,omitempty"`   // Payload on success
	Errors  validation.FieldErrors `json:"errors,omitempty"` // Per-field violations
	Error   string                 `json:"error,omitempty"`  // Failure detail, withheld in production
}

// respond writes a success envelope
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,    // Call succeeded
		Message: message, // Summary
		Data:    data,    // Payload
	})
}

// fail maps a service error onto the envelope and a status code. notFoundMsg
// names the missing resource so 404s read naturally per endpoint.
func fail(c *gin.Context, isProd bool, err error, notFoundMsg string) {
	var vErr *service.ValidationError // Validation error carrier
	switch {
	case errors.As(err, &vErr):
		// Field-level violations go back verbatim
		c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: "Validation failed", Errors: vErr.Fields})
	case errors.Is(err, service.ErrNameTaken):
		c.JSON(http.StatusConflict, Envelope{Success: false, Message: "Name already exists"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, Envelope{Success: false, Message: notFoundMsg})
	case errors.Is(err, service.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: "Invalid credentials"})
	default:
		// Anything below the service boundary is reported as a server error
		env := Envelope{Success: false, Message: "Server error!"}
		if !isProd {
			env.Error = err.Error() // Diagnostic detail outside production
		}
		c.JSON(http.StatusInternalServerError, env)
	}
}

// badRequest writes a plain 400 for unparseable request bodies
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}
