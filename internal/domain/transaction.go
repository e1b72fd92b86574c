package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation
	"gorm.io/gorm"           // GORM ORM library
)

// Transaction direction flags
const (
	DirectionExpense int8 = -1 // Money leaving the wallet
	DirectionIncome  int8 = 1  // Money entering the wallet
)

// Transaction Model
type Transaction struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`          // Opaque, non-sequential identifier
	WalletID    string    `gorm:"size:36;index" json:"wallet"`           // Foreign key to Wallet
	Name        string    `gorm:"not null" json:"name"`                  // Display name
	Description string    `json:"desc,omitempty"`                        // Optional free-text description
	Amount      float64   `gorm:"not null" json:"amount"`                // Non-negative magnitude
	Type        int8      `gorm:"not null" json:"type"`                  // Direction flag: -1 expense, 1 income
	Date        time.Time `json:"date"`                                  // Transaction date, defaults to creation time
	CreatedAt   time.Time `gorm:"index:idx_tx_created" json:"createdAt"` // Timestamp of creation
	UpdatedAt   time.Time `json:"updatedAt"`                             // Timestamp of last modification
}

// BeforeCreate assigns a fresh UUID when none is set
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString() // Generate new UUID
	}
	return nil
}
