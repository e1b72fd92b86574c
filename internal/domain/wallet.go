package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation
	"gorm.io/gorm"           // GORM ORM library
)

// Wallet Model
type Wallet struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"` // Opaque, non-sequential identifier
	Owner       string    `gorm:"size:36;index" json:"owner"`   // Owning user's ID
	Name        string    `gorm:"not null" json:"name"`         // Display name ("default" for the registration wallet)
	Description string    `json:"description,omitempty"`        // Optional free-text description
	CreatedAt   time.Time `json:"createdAt"`                    // Timestamp of creation
	UpdatedAt   time.Time `json:"updatedAt"`                    // Timestamp of last modification
}

// BeforeCreate assigns a fresh UUID when none is set
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString() // Generate new UUID
	}
	return nil
}
