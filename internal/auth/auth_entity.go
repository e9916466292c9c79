package auth

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email               string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash        string     `gorm:"column:password_hash;type:varchar(255);not null"`
	ResetToken          *string    `gorm:"column:reset_token;type:varchar(255)"`
	ResetTokenExpiresAt *time.Time `gorm:"column:reset_token_expires_at"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Account) TableName() string {
	return "auth_accounts"
}
