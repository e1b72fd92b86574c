package service

import (
	"context" // Context for store operations
	"errors"  // Error inspection

	"github.com/Apisit250aps/transactions/internal/domain"     // Domain models
	"github.com/Apisit250aps/transactions/internal/store"      // Persistence port
	"github.com/Apisit250aps/transactions/internal/utils"      // JWT helpers
	"github.com/Apisit250aps/transactions/internal/validation" // Input DTOs

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// DefaultWalletName is the name of the wallet created with every new user
const DefaultWalletName = "default"

// AuthService handles registration and login
type AuthService struct {
	store     store.Store // Persistence port
	jwtSecret string      // JWT signing secret
}

// NewAuthService constructs an AuthService
func NewAuthService(s store.Store, jwtSecret string) *AuthService {
	return &AuthService{store: s, jwtSecret: jwtSecret}
}

// Register creates a new user together with its default wallet. The pair is
// persisted atomically; a user must never exist without its wallet.
func (s *AuthService) Register(ctx context.Context, in validation.RegisterInput) error {
	// Schema-check the payload
	if fields := validation.Struct(in); fields != nil {
		return invalid(fields)
	}
	// Check name uniqueness before hashing
	if _, err := s.store.FindUserByName(ctx, in.Name); err == nil {
		return ErrNameTaken // Name is taken
	} else if !errors.Is(err, store.ErrNotFound) {
		return err // Store failure surfaces as a server error
	}
	// Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := domain.User{Name: in.Name, Password: string(hash)} // New user record
	wallet := domain.Wallet{Name: DefaultWalletName}           // Paired default wallet
	// Persist both as one atomic unit
	if err := s.store.CreateUserWithWallet(ctx, &user, &wallet); err != nil {
		// A concurrent registration can still win the unique index race
		if errors.Is(err, store.ErrDuplicate) {
			return ErrNameTaken
		}
		logrus.WithFields(logrus.Fields{
			"name":  in.Name,     // Requested name
			"error": err.Error(), // Error message
		}).Error("Registration failed") // Log registration failure
		return err
	}
	// Log successful registration
	logrus.WithFields(logrus.Fields{
		"user_id":   user.ID,   // New user ID
		"wallet_id": wallet.ID, // Default wallet ID
	}).Info("User registered")
	return nil // Registration does not auto-login
}

// Login verifies the credentials and issues a signed bearer token
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (string, *domain.User, error) {
	// Schema-check the payload
	if fields := validation.Struct(in); fields != nil {
		return "", nil, invalid(fields)
	}
	// Look up the user by name
	user, err := s.store.FindUserByName(ctx, in.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrNotFound // Unknown name
		}
		return "", nil, err
	}
	// Compare provided password with stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", nil, ErrBadCredentials
	}
	// Issue the bearer token
	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
