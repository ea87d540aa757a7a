package users

import (
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	IsVerified   bool

	// Plan is "free" or "paid". ProductCount is only authoritative while the
	// user is on the free plan; the paid plan does not track it.
	Plan         string `gorm:"type:varchar(20);not null;default:'free'"`
	ProductCount int    `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
