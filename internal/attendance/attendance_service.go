package attendance

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-chms/internal/accesspolicy"
	attendanceerrors "go-chms/internal/attendance/errors"
	"go-chms/internal/audit"
	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
)

// MemberDirectory is the slice of the membership service this package needs:
// resolving a person's category and registering a brand-new person.
type MemberDirectory interface {
	LookupCategory(ctx context.Context, name string) (string, bool, error)
	CreateMember(ctx context.Context, name, category string) error
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req AddAttendanceRequest) (*Attendance, error)
	ListServices(ctx context.Context) ([]string, error)
	DeleteService(ctx context.Context, serviceName string) (int64, error)
}

type service struct {
	repo     Repository
	members  MemberDirectory
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, members MemberDirectory, recorder audit.Recorder) Service {
	return &service{
		repo:     repo,
		members:  members,
		recorder: recorder,
		logger:   zap.L().Named("attendance_service"),
	}
}

func (s *service) Add(ctx context.Context, req AddAttendanceRequest) (*Attendance, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.RequiredField("name")
	}
	serviceName := strings.TrimSpace(req.ServiceName)
	if serviceName == "" {
		return nil, apperror.RequiredField("service_name")
	}

	category := strings.TrimSpace(req.Category)
	if category != "" && !IsValidCategory(category) {
		return nil, attendanceerrors.ErrUnknownCategory
	}

	memberCategory, found, err := s.members.LookupCategory(ctx, name)
	if err != nil {
		return nil, err
	}

	if found {
		if category == "" {
			category = memberCategory
		}
	} else {
		role := accesspolicy.Role(contextutil.GetUserRole(ctx))
		if !accesspolicy.IsAuthorized(role, accesspolicy.AdminOnly()) {
			return nil, attendanceerrors.ErrMemberRequired
		}
		if category == "" {
			category = CategoryNew
		}
		if err := s.members.CreateMember(ctx, name, category); err != nil {
			return nil, err
		}
	}
	if category == "" {
		category = CategoryOther
	}

	// Fresh snapshot right before insert. See IsDuplicate for the guarantees
	// this does and does not give.
	existing, err := s.repo.FindByServiceAndDate(ctx, serviceName, date)
	if err != nil {
		return nil, err
	}
	if IsDuplicate(existing, Candidate{Name: name, ServiceName: serviceName, Date: req.Date}) {
		return nil, attendanceerrors.ErrDuplicateAttendance
	}

	record := &Attendance{
		Name:           name,
		Category:       category,
		ServiceName:    serviceName,
		AttendanceDate: date,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, audit.AttendanceAdded{
		Name:        name,
		Category:    category,
		ServiceName: serviceName,
		Date:        req.Date,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return record, nil
}

// ListServices degrades to an empty list on storage errors so the selection
// screen stays usable.
func (s *service) ListServices(ctx context.Context) ([]string, error) {
	services, err := s.repo.DistinctServices(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("failed to list services", zap.Error(err))
		return []string{}, nil
	}
	if services == nil {
		services = []string{}
	}
	return services, nil
}

func (s *service) DeleteService(ctx context.Context, serviceName string) (int64, error) {
	removed, err := s.repo.DeleteByService(ctx, serviceName)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, attendanceerrors.ErrServiceNotFound
	}

	if err := s.recorder.Record(ctx, audit.ServiceDeleted{
		ServiceName: serviceName,
		Removed:     removed,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return removed, nil
}
