package audit

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// maxListRows caps the audit listing; the trail is unbounded and the listing
// is a recent-activity view, not an export.
const maxListRows = 1000

type ListFilter struct {
	Action string
	Actor  string
	From   *time.Time
	To     *time.Time
	Search string
}

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	List(ctx context.Context, filter ListFilter) ([]AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]AuditLog, error) {
	q := r.db.WithContext(ctx).Model(&AuditLog{})

	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Actor != "" {
		q = q.Where("actor = ?", filter.Actor)
	}
	if filter.From != nil {
		q = q.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("occurred_at <= ?", *filter.To)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("details ILIKE ? OR actor ILIKE ?", pattern, pattern)
	}

	var rows []AuditLog
	err := q.Order("occurred_at DESC").Limit(maxListRows).Find(&rows).Error
	return rows, err
}
