package auth

import "time"

// BlacklistedToken records a revoked bearer token until its natural expiry.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"type:text;not null;index;column:token" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index;column:expires_at" json:"expires_at"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlacklistedToken) TableName() string { return "blacklisted_tokens" }
