package audit

import (
	"context"
	"time"
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, query ListLogsQuery) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, query ListLogsQuery) ([]AuditLog, error) {
	filter := ListFilter{
		Action: query.Action,
		Actor:  query.User,
		Search: query.Search,
	}

	if query.StartDate != "" {
		from, err := time.Parse("2006-01-02", query.StartDate)
		if err == nil {
			filter.From = &from
		}
	}
	if query.EndDate != "" {
		// Inclusive end of day.
		to, err := time.Parse("2006-01-02", query.EndDate)
		if err == nil {
			end := to.Add(24*time.Hour - time.Nanosecond)
			filter.To = &end
		}
	}

	return s.repo.List(ctx, filter)
}
