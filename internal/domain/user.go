package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation
	"gorm.io/gorm"           // GORM ORM library
)

// User Model
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"` // Opaque, non-sequential identifier
	Name      string    `gorm:"unique;not null" json:"name"`  // Unique display name
	Password  string    `gorm:"not null" json:"-"`            // Hashed password, never serialized
	CreatedAt time.Time `json:"createdAt"`                    // Timestamp of creation
	UpdatedAt time.Time `json:"updatedAt"`                    // Timestamp of last modification
}

// BeforeCreate assigns a fresh UUID when none is set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString() // Generate new UUID
	}
	return nil
}
