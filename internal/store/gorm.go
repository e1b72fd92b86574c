package store

import (
	"context" // Context for store operations
	"errors"  // Error inspection

	"github.com/Apisit250aps/transactions/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// GormStore implements Store on top of a GORM database handle
type GormStore struct {
	db *gorm.DB // Underlying database connection
}

// NewGormStore wraps a GORM handle in the Store port
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// translate maps GORM errors onto the store sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound // Collapse to the shared not-found sentinel
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate // Unique index violation
	default:
		return err // Anything else surfaces as a server-side failure
	}
}

// CreateUserWithWallet persists both records inside one database transaction
func (s *GormStore) CreateUserWithWallet(ctx context.Context, user *domain.User, wallet *domain.Wallet) error {
	// Run both inserts atomically; any failure rolls the pair back
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err // Return error to rollback
		}
		wallet.Owner = user.ID // Wallet references the freshly created user
		if err := tx.Create(wallet).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	return translate(err)
}

// FindUserByName returns the user with the given unique name
func (s *GormStore) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindWallet returns a wallet by ID
func (s *GormStore) FindWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	var wallet domain.Wallet // Wallet struct to hold data
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&wallet).Error; err != nil {
		return nil, translate(err)
	}
	return &wallet, nil
}

// FindWalletByOwner returns the owner's wallet with the given name
func (s *GormStore) FindWalletByOwner(ctx context.Context, owner, name string) (*domain.Wallet, error) {
	var wallet domain.Wallet // Wallet struct to hold data
	if err := s.db.WithContext(ctx).Where("owner = ? AND name = ?", owner, name).First(&wallet).Error; err != nil {
		return nil, translate(err)
	}
	return &wallet, nil
}

// WalletIDsByOwner returns the IDs of every wallet the owner holds
func (s *GormStore) WalletIDsByOwner(ctx context.Context, owner string) ([]string, error) {
	var ids []string // Wallet IDs
	err := s.db.WithContext(ctx).Model(&domain.Wallet{}).
		Where("owner = ?", owner).
		Pluck("id", &ids).Error
	return ids, translate(err)
}

// CreateTransaction persists a new transaction
func (s *GormStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	return translate(s.db.WithContext(ctx).Create(tx).Error)
}

// FindTransaction returns a transaction by ID
func (s *GormStore) FindTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	var tx domain.Transaction // Transaction struct to hold data
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

// SaveTransaction writes back a mutated transaction
func (s *GormStore) SaveTransaction(ctx context.Context, tx *domain.Transaction) error {
	return translate(s.db.WithContext(ctx).Save(tx).Error)
}

// DeleteTransaction removes a transaction permanently
func (s *GormStore) DeleteTransaction(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Transaction{})
	if res.Error != nil {
		return translate(res.Error)
	}
	// Deleting an unknown ID must not look like success
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTransactions returns one page of transactions for the given wallets,
// newest first, plus the total matching count
func (s *GormStore) ListTransactions(ctx context.Context, walletIDs []string, offset, limit int) ([]domain.Transaction, int64, error) {
	if len(walletIDs) == 0 {
		return []domain.Transaction{}, 0, nil // No wallets, empty page
	}
	var total int64 // Total count of transactions
	// Count total transactions for pagination
	if err := s.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("wallet_id IN ?", walletIDs).
		Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var txs []domain.Transaction // Slice to hold transactions
	// Fetch the requested page, newest first; ID breaks creation-time ties
	// so consecutive pages never overlap
	if err := s.db.WithContext(ctx).
		Where("wallet_id IN ?", walletIDs).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&txs).Error; err != nil {
		return nil, 0, translate(err)
	}
	return txs, total, nil
}
