package analytics

import (
	"context"

	"go-chms/internal/attendance"
)

// AttendanceSource provides the full record set the aggregations run over.
type AttendanceSource interface {
	FindAll(ctx context.Context) ([]attendance.Attendance, error)
}

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context) (map[string]ServiceSummary, error)
	Grouped(ctx context.Context) (map[string]map[string][]string, error)
	Detailed(ctx context.Context, serviceName string) (DetailedSummary, error)
}

type service struct {
	source AttendanceSource
}

func NewService(source AttendanceSource) Service {
	return &service{source: source}
}

func (s *service) Overview(ctx context.Context) (map[string]ServiceSummary, error) {
	records, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByService(records), nil
}

func (s *service) Grouped(ctx context.Context) (map[string]map[string][]string, error) {
	records, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByServiceAndDate(records), nil
}

func (s *service) Detailed(ctx context.Context, serviceName string) (DetailedSummary, error) {
	records, err := s.source.FindAll(ctx)
	if err != nil {
		return DetailedSummary{}, err
	}
	return AggregateDetailed(records, serviceName), nil
}
