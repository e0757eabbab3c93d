package models

import "time"

// PasswordReset records every issued reset token by its jti. A token is
// redeemable only while its row is unconsumed, which makes reset links
// single-use even though the JWT itself stays valid until expiry.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey"`
	TokenID   string    `gorm:"uniqueIndex;size:64;not null"`
	Email     string    `gorm:"index;size:255;not null"`
	ExpiresAt time.Time `gorm:"index"`
	UsedAt    *time.Time
	CreatedAt time.Time
}
