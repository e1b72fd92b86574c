package service

import (
	"context" // Context for store operations
	"errors"  // Error inspection

	"github.com/Apisit250aps/transactions/internal/domain" // Domain models
	"github.com/Apisit250aps/transactions/internal/store"  // Persistence port
)

// WalletService resolves wallets and enforces ownership
type WalletService struct {
	store store.Store // Persistence port
}

// NewWalletService constructs a WalletService
func NewWalletService(s store.Store) *WalletService {
	return &WalletService{store: s}
}

// DefaultWallet returns the user's default wallet
func (s *WalletService) DefaultWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet, err := s.store.FindWalletByOwner(ctx, userID, DefaultWalletName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return wallet, nil
}

// AssertOwnership verifies that the wallet belongs to the user. A wallet that
// does not exist and a wallet owned by someone else both report ErrNotFound,
// so wallet identifiers cannot be probed across users.
func (s *WalletService) AssertOwnership(ctx context.Context, walletID, userID string) error {
	wallet, err := s.store.FindWallet(ctx, walletID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if wallet.Owner != userID {
		return ErrNotFound // Indistinguishable from a missing wallet
	}
	return nil
}
