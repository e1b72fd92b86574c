// Package validation turns raw request payloads into typed DTOs and reports
// schema violations as a per-field message map that goes back to the client
// verbatim inside the response envelope.
package validation

import (
	"fmt"     // Message formatting
	"reflect" // Struct tag lookup for field names
	"strings" // String manipulation
	"time"    // Transaction dates

	"github.com/go-playground/validator/v10" // Schema validation
)

// FieldErrors maps a field path to its ordered list of violation reasons
type FieldErrors map[string][]string

// validate is the shared validator instance; field names come from the json
// tag so violations match the wire format the client sent
var validate = newValidator()

// newValidator builds the validator with json tag field naming
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return "" // Unserialized fields keep their Go name
		}
		return name
	})
	return v
}

// RegisterInput is the payload for user registration
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`       // Unique display name
	Password string `json:"password" validate:"required,min=6"` // Plaintext password, hashed before storage
}

// LoginInput is the payload for user login
type LoginInput struct {
	Name     string `json:"name" validate:"required"`     // Display name
	Password string `json:"password" validate:"required"` // Plaintext password
}

// TransactionInput is the payload for transaction creation. Amount and Type
// are pointers so a present zero survives the required check.
type TransactionInput struct {
	Name        string     `json:"name" validate:"required"`             // Display name
	Description string     `json:"desc"`                                 // Optional description
	Amount      *float64   `json:"amount" validate:"required,gte=0"`     // Non-negative magnitude
	Type        *int8      `json:"type" validate:"required,oneof=-1 1"`  // Direction flag
	Date        *time.Time `json:"date"`                                 // Optional transaction date
	Wallet      string     `json:"wallet"`                               // Optional target wallet, default wallet when empty
}

// TransactionUpdate is the partial payload for transaction updates; nil
// fields are left untouched
type TransactionUpdate struct {
	Name        *string    `json:"name"`                                  // New display name
	Description *string    `json:"desc"`                                  // New description
	Amount      *float64   `json:"amount" validate:"omitempty,gte=0"`     // New magnitude
	Type        *int8      `json:"type" validate:"omitempty,oneof=-1 1"`  // New direction flag
	Date        *time.Time `json:"date"`                                  // New transaction date
}

// Struct validates a DTO and returns nil when it passes, or the full
// per-field violation map when it does not (all-or-nothing per call)
func Struct(v any) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fields := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return fields
}

// CheckUpdate validates a partial update payload. The omitempty tags skip
// present-but-empty strings, so the non-empty name rule is checked here.
func CheckUpdate(u TransactionUpdate) FieldErrors {
	fields := Struct(u)
	if u.Name != nil && *u.Name == "" {
		if fields == nil {
			fields = FieldErrors{}
		}
		fields["name"] = append(fields["name"], "This field is required")
	}
	return fields
}

// message renders one violation as a human-readable reason
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
