package store

import (
	"context" // Context for store operations
	"sort"    // Sorting transaction pages
	"sync"    // Mutex for concurrent access
	"time"    // Timestamps

	"github.com/Apisit250aps/transactions/internal/domain" // Domain models

	"github.com/google/uuid" // UUID generation
)

// MemoryStore is an in-memory Store implementation for tests and local
// development. It mimics a document store without multi-record transactions,
// so paired writes use compensating rollback instead.
type MemoryStore struct {
	mu           sync.Mutex                     // Guards all maps
	users        map[string]domain.User         // Users by ID
	usersByName  map[string]string              // User ID by unique name
	wallets      map[string]domain.Wallet       // Wallets by ID
	transactions map[string]domain.Transaction  // Transactions by ID

	// WalletErr, when set, makes the next wallet insert fail so the
	// registration rollback path can be exercised
	WalletErr error
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]domain.User),
		usersByName:  make(map[string]string),
		wallets:      make(map[string]domain.Wallet),
		transactions: make(map[string]domain.Transaction),
	}
}

// stamp fills identifier and timestamps the way the database layer would
func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString() // Generate new UUID
	}
	now := time.Now()
	*createdAt = now
	*updatedAt = now
}

// CreateUserWithWallet inserts the pair with compensating rollback: if the
// wallet insert fails, the user record is removed again so no observer ever
// sees a user without its wallet
func (s *MemoryStore) CreateUserWithWallet(ctx context.Context, user *domain.User, wallet *domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usersByName[user.Name]; taken {
		return ErrDuplicate // Name uniqueness violated
	}
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	s.users[user.ID] = *user
	s.usersByName[user.Name] = user.ID
	// Wallet insert; on failure undo the user insert
	if s.WalletErr != nil {
		err := s.WalletErr
		s.WalletErr = nil
		delete(s.users, user.ID)        // Compensating rollback
		delete(s.usersByName, user.Name) // Remove name reservation too
		return err
	}
	wallet.Owner = user.ID // Wallet references the freshly created user
	stamp(&wallet.ID, &wallet.CreatedAt, &wallet.UpdatedAt)
	s.wallets[wallet.ID] = *wallet
	return nil
}

// FindUserByName returns the user with the given unique name
func (s *MemoryStore) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.usersByName[name]
	if !ok {
		return nil, ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

// FindWallet returns a wallet by ID
func (s *MemoryStore) FindWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wallet, ok := s.wallets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &wallet, nil
}

// FindWalletByOwner returns the owner's wallet with the given name
func (s *MemoryStore) FindWalletByOwner(ctx context.Context, owner, name string) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wallet := range s.wallets {
		if wallet.Owner == owner && wallet.Name == name {
			return &wallet, nil
		}
	}
	return nil, ErrNotFound
}

// WalletIDsByOwner returns the IDs of every wallet the owner holds
func (s *MemoryStore) WalletIDsByOwner(ctx context.Context, owner string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id, wallet := range s.wallets {
		if wallet.Owner == owner {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// CreateTransaction persists a new transaction
func (s *MemoryStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	s.transactions[tx.ID] = *tx
	return nil
}

// FindTransaction returns a transaction by ID
func (s *MemoryStore) FindTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tx, nil
}

// SaveTransaction writes back a mutated transaction and refreshes UpdatedAt
func (s *MemoryStore) SaveTransaction(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[tx.ID]; !ok {
		return ErrNotFound
	}
	tx.UpdatedAt = time.Now() // Refresh modification timestamp
	s.transactions[tx.ID] = *tx
	return nil
}

// DeleteTransaction removes a transaction permanently
func (s *MemoryStore) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return ErrNotFound // Deleting an unknown ID must not look like success
	}
	delete(s.transactions, id)
	return nil
}

// ListTransactions returns one page of transactions for the given wallets,
// newest first, plus the total matching count
func (s *MemoryStore) ListTransactions(ctx context.Context, walletIDs []string, offset, limit int) ([]domain.Transaction, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := make(map[string]bool, len(walletIDs)) // Wallet ID membership set
	for _, id := range walletIDs {
		owned[id] = true
	}
	var matched []domain.Transaction // Full matching set
	for _, tx := range s.transactions {
		if owned[tx.WalletID] {
			matched = append(matched, tx)
		}
	}
	// Newest first; ID breaks creation-time ties so pages never overlap
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	total := int64(len(matched)) // Total before slicing
	if offset >= len(matched) {
		return []domain.Transaction{}, total, nil // Page past the end is empty
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
