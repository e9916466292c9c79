package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Action     string         `gorm:"column:action;type:varchar(100);not null;index"`
	Details    string         `gorm:"column:details;type:text;not null"`
	Actor      string         `gorm:"column:actor;type:varchar(255);not null;index"`
	OccurredAt time.Time      `gorm:"column:occurred_at;not null;index"`
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
