package app

import (
	"gorm.io/gorm"

	"go-chms/internal/alloweduser"
	"go-chms/internal/attendance"
	"go-chms/internal/audit"
	"go-chms/internal/auth"
	"go-chms/internal/membership"
)

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	topic VARCHAR(255) NOT NULL,
	key VARCHAR(255) NOT NULL DEFAULT '',
	payload BYTEA NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	published_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created_at
	ON outbox_events (status, created_at);
`

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&attendance.Attendance{},
		&membership.Member{},
		&alloweduser.AllowedUser{},
		&auth.Account{},
		&audit.AuditLog{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
