package alloweduser

import (
	"time"

	"github.com/google/uuid"
)

// AllowedUser is one row of the access list. Email is stored lowercased and
// is the identity everything else keys on.
type AllowedUser struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Role      string    `gorm:"column:role;type:varchar(50);not null;default:user"`
	AddedBy   string    `gorm:"column:added_by;type:varchar(255)"`
	UpdatedBy string    `gorm:"column:updated_by;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AllowedUser) TableName() string {
	return "allowed_users"
}
