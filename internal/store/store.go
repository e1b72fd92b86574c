// Package store defines the persistence port used by the services and its
// two implementations: a GORM/MySQL store for deployment and an in-memory
// store for tests and local development.
package store

import (
	"context" // Context for store operations
	"errors"  // Sentinel errors

	"github.com/Apisit250aps/transactions/internal/domain" // Domain models
)

// Sentinel errors shared by all implementations
var (
	ErrNotFound  = errors.New("record not found") // No row matched the query
	ErrDuplicate = errors.New("duplicate key")    // Unique constraint violated
)

// Store is the persistence port injected into the services
type Store interface {
	// CreateUserWithWallet persists a user and its default wallet as one
	// atomic unit: either both records exist afterwards or neither does.
	CreateUserWithWallet(ctx context.Context, user *domain.User, wallet *domain.Wallet) error
	// FindUserByName returns the user with the given unique name
	FindUserByName(ctx context.Context, name string) (*domain.User, error)

	// FindWallet returns a wallet by ID
	FindWallet(ctx context.Context, id string) (*domain.Wallet, error)
	// FindWalletByOwner returns the owner's wallet with the given name
	FindWalletByOwner(ctx context.Context, owner, name string) (*domain.Wallet, error)
	// WalletIDsByOwner returns the IDs of every wallet the owner holds
	WalletIDsByOwner(ctx context.Context, owner string) ([]string, error)

	// CreateTransaction persists a new transaction
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	// FindTransaction returns a transaction by ID
	FindTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	// SaveTransaction writes back a mutated transaction and refreshes its
	// modification timestamp
	SaveTransaction(ctx context.Context, tx *domain.Transaction) error
	// DeleteTransaction removes a transaction permanently; deleting an
	// unknown ID reports ErrNotFound
	DeleteTransaction(ctx context.Context, id string) error
	// ListTransactions returns one page of the transactions belonging to the
	// given wallets, ordered by creation time descending, plus the total
	// count of the full matching set
	ListTransactions(ctx context.Context, walletIDs []string, offset, limit int) ([]domain.Transaction, int64, error)
}
