package service

import (
	"context" // Context for store operations
	"errors"  // Error inspection
	"time"    // Timestamps

	"github.com/Apisit250aps/transactions/internal/domain"     // Domain models
	"github.com/Apisit250aps/transactions/internal/store"      // Persistence port
	"github.com/Apisit250aps/transactions/internal/validation" // Input DTOs

	"github.com/sirupsen/logrus" // Logging library
)

// Pagination defaults for transaction listing
const (
	DefaultPage  = 1  // First page
	DefaultLimit = 10 // Items per page
)

// PageMeta describes one page of a listing
type PageMeta struct {
	Page       int   `json:"page"`       // Current page, 1-based
	Limit      int   `json:"limit"`      // Items per page
	Total      int64 `json:"total"`      // Total matching items
	TotalPages int   `json:"totalPages"` // Total page count
}

// TransactionService handles the transaction ledger of an authenticated user
type TransactionService struct {
	store   store.Store    // Persistence port
	wallets *WalletService // Ownership checks and default wallet lookup
}

// NewTransactionService constructs a TransactionService
func NewTransactionService(s store.Store, wallets *WalletService) *TransactionService {
	return &TransactionService{store: s, wallets: wallets}
}

// Create validates the fields, asserts wallet ownership and persists a new
// transaction. When no wallet is given the caller's default wallet is used.
func (s *TransactionService) Create(ctx context.Context, userID string, in validation.TransactionInput) (*domain.Transaction, error) {
	// Schema-check the payload
	if fields := validation.Struct(in); fields != nil {
		return nil, invalid(fields)
	}
	walletID := in.Wallet // Explicit target wallet, if any
	if walletID == "" {
		// Fall back to the caller's default wallet
		wallet, err := s.wallets.DefaultWallet(ctx, userID)
		if err != nil {
			return nil, err
		}
		walletID = wallet.ID
	} else if err := s.wallets.AssertOwnership(ctx, walletID, userID); err != nil {
		return nil, err // Not owned or nonexistent, both report not found
	}
	tx := domain.Transaction{
		WalletID:    walletID,       // Owning wallet
		Name:        in.Name,        // Display name
		Description: in.Description, // Optional description
		Amount:      *in.Amount,     // Validated non-negative magnitude
		Type:        *in.Type,       // Validated direction flag
	}
	if in.Date != nil {
		tx.Date = *in.Date // Explicit transaction date
	} else {
		tx.Date = time.Now() // Defaults to creation time
	}
	if err := s.store.CreateTransaction(ctx, &tx); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,      // Caller
			"wallet_id": walletID,    // Target wallet
			"error":     err.Error(), // Error message
		}).Error("Failed to create transaction")
		return nil, err
	}
	// Log successful creation
	logrus.WithFields(logrus.Fields{
		"user_id":        userID,    // Caller
		"wallet_id":      walletID,  // Target wallet
		"transaction_id": tx.ID,     // New transaction ID
		"amount":         tx.Amount, // Magnitude
		"type":           tx.Type,   // Direction flag
	}).Info("Transaction created")
	return &tx, nil
}

// Get loads a transaction and asserts, through its wallet, that it belongs
// to the caller
func (s *TransactionService) Get(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	tx, err := s.store.FindTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Ownership of the transaction follows ownership of its wallet
	if err := s.wallets.AssertOwnership(ctx, tx.WalletID, userID); err != nil {
		return nil, err
	}
	return tx, nil
}

// List returns one page of the caller's transactions across all owned
// wallets, ordered by creation time descending. Non-positive page or limit
// values are coerced to their defaults.
func (s *TransactionService) List(ctx context.Context, userID string, page, limit int) ([]domain.Transaction, PageMeta, error) {
	if page < 1 {
		page = DefaultPage // Coerce to default
	}
	if limit < 1 {
		limit = DefaultLimit // Coerce to default
	}
	// Resolve every wallet the caller owns
	walletIDs, err := s.store.WalletIDsByOwner(ctx, userID)
	if err != nil {
		return nil, PageMeta{}, err
	}
	// Fetch the requested slice plus the full matching count
	txs, total, err := s.store.ListTransactions(ctx, walletIDs, (page-1)*limit, limit)
	if err != nil {
		return nil, PageMeta{}, err
	}
	// Calculate total pages
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := PageMeta{
		Page:       page,       // Current page
		Limit:      limit,      // Items per page
		Total:      total,      // Total matching items
		TotalPages: totalPages, // Total page count
	}
	return txs, meta, nil
}

// Update applies only the fields present in the request, re-validating each
// one, and refreshes the modification timestamp
func (s *TransactionService) Update(ctx context.Context, userID, id string, in validation.TransactionUpdate) (*domain.Transaction, error) {
	// Re-validate every present field
	if fields := validation.CheckUpdate(in); fields != nil {
		return nil, invalid(fields)
	}
	// Load with ownership check
	tx, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	// Partial update semantics: unset fields are left untouched
	if in.Name != nil {
		tx.Name = *in.Name
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Type != nil {
		tx.Type = *in.Type
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}
	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,      // Caller
			"transaction_id": id,          // Target transaction
			"error":          err.Error(), // Error message
		}).Error("Failed to update transaction")
		return nil, err
	}
	// Log successful update
	logrus.WithFields(logrus.Fields{
		"user_id":        userID, // Caller
		"transaction_id": id,     // Target transaction
	}).Info("Transaction updated")
	return tx, nil
}

// Delete removes a transaction permanently. Deleting a nonexistent or
// not-owned ID reports ErrNotFound each time, never success.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	// Load with ownership check
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound // Already gone
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        userID,      // Caller
			"transaction_id": id,          // Target transaction
			"error":          err.Error(), // Error message
		}).Error("Failed to delete transaction")
		return err
	}
	// Log successful deletion
	logrus.WithFields(logrus.Fields{
		"user_id":        userID, // Caller
		"transaction_id": id,     // Target transaction
	}).Info("Transaction deleted")
	return nil
}
