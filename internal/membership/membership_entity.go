package membership

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string     `gorm:"column:name;type:varchar(255);not null;index"`
	Category   string     `gorm:"column:category;type:varchar(50);not null"`
	RecordedAt *time.Time `gorm:"column:recorded_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Member) TableName() string {
	return "members"
}
