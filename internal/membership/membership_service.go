package membership

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-chms/internal/attendance"
	"go-chms/internal/audit"
	membershiperrors "go-chms/internal/membership/errors"
	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
)

//go:generate mockgen -source=membership_service.go -destination=mock/membership_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, query ListMembersQuery) ([]Member, error)
	Rename(ctx context.Context, req RenameRequest) (*RenameResponse, error)
	Recategorize(ctx context.Context, req RecategorizeRequest) (*RecategorizeResponse, error)
	BulkRecategorize(ctx context.Context, req BulkRecategorizeRequest) (*BulkRecategorizeResponse, error)
	Import(ctx context.Context, req ImportRequest) (*ImportResponse, error)

	// Directory methods used when recording attendance.
	LookupCategory(ctx context.Context, name string) (string, bool, error)
	CreateMember(ctx context.Context, name, category string) error
}

type service struct {
	repo        Repository
	attendances attendance.Repository
	recorder    audit.Recorder
	logger      *zap.Logger
}

func NewService(repo Repository, attendances attendance.Repository, recorder audit.Recorder) Service {
	return &service{
		repo:        repo,
		attendances: attendances,
		recorder:    recorder,
		logger:      zap.L().Named("membership_service"),
	}
}

func (s *service) List(ctx context.Context, query ListMembersQuery) ([]Member, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	members := Reconcile(rows)

	if query.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(query.Search))
		filtered := members[:0]
		for _, m := range members {
			if strings.Contains(strings.ToLower(m.Name), needle) {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}

	if query.Category != "" {
		filtered := members[:0]
		for _, m := range members {
			if m.Category == query.Category {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}

	sortMembers(members, query.SortBy, query.SortDir)
	return members, nil
}

func sortMembers(members []Member, by, dir string) {
	desc := dir == "desc"

	less := func(a, b Member) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
	switch by {
	case "category":
		less = func(a, b Member) bool { return a.Category < b.Category }
	case "recorded_at":
		less = func(a, b Member) bool { return laterThan(b, a) }
	}

	sort.SliceStable(members, func(i, j int) bool {
		if desc {
			return less(members[j], members[i])
		}
		return less(members[i], members[j])
	})
}

// Rename cascades a person's new name across member and attendance rows. The
// two updates run independently, so a crash in between can leave the name
// applied to one store only; re-running the rename heals it.
func (s *service) Rename(ctx context.Context, req RenameRequest) (*RenameResponse, error) {
	oldName := strings.TrimSpace(req.OldName)
	newName := strings.TrimSpace(req.NewName)
	if newName == "" {
		return nil, apperror.RequiredField("new_name")
	}

	oldNorm := normalizeName(oldName)
	newNorm := normalizeName(newName)

	existing, err := s.repo.FindByNormalizedName(ctx, oldNorm)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, membershiperrors.ErrMemberNotFound
	}

	if newNorm != oldNorm {
		clash, err := s.repo.FindByNormalizedName(ctx, newNorm)
		if err != nil {
			return nil, err
		}
		if len(clash) > 0 {
			return nil, membershiperrors.ErrDuplicateName
		}
	}

	memberRows, err := s.repo.UpdateNameByNormalizedName(ctx, oldNorm, newName)
	if err != nil {
		return nil, err
	}
	attendanceRows, err := s.attendances.UpdateNameByNormalizedName(ctx, oldNorm, newName)
	if err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, audit.NameChanged{
		OldName:        oldName,
		NewName:        newName,
		AttendanceRows: attendanceRows,
		MembershipRows: memberRows,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return &RenameResponse{
		OldName:        oldName,
		NewName:        newName,
		MembershipRows: memberRows,
		AttendanceRows: attendanceRows,
	}, nil
}

func (s *service) Recategorize(ctx context.Context, req RecategorizeRequest) (*RecategorizeResponse, error) {
	if !attendance.IsValidCategory(req.Category) {
		return nil, membershiperrors.ErrUnknownCategory
	}
	return s.recategorizeOne(ctx, req.Name, req.Category)
}

func (s *service) recategorizeOne(ctx context.Context, name, category string) (*RecategorizeResponse, error) {
	norm := normalizeName(name)

	rows, err := s.repo.FindByNormalizedName(ctx, norm)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, membershiperrors.ErrMemberNotFound
	}

	current := Reconcile(rows)[0]
	if current.Category == category {
		return &RecategorizeResponse{
			Name:        current.Name,
			OldCategory: current.Category,
			NewCategory: category,
			Changed:     false,
		}, nil
	}

	if _, err := s.repo.UpdateCategoryByNormalizedName(ctx, norm, category); err != nil {
		return nil, err
	}
	if _, err := s.attendances.UpdateCategoryByNormalizedName(ctx, norm, category); err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, audit.CategoryChanged{
		Name:        current.Name,
		OldCategory: current.Category,
		NewCategory: category,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return &RecategorizeResponse{
		Name:        current.Name,
		OldCategory: current.Category,
		NewCategory: category,
		Changed:     true,
	}, nil
}

// BulkRecategorize moves every canonical member of one category into
// another. Each moved person gets their own audit entry rather than one
// entry for the whole batch.
func (s *service) BulkRecategorize(ctx context.Context, req BulkRecategorizeRequest) (*BulkRecategorizeResponse, error) {
	if !attendance.IsValidCategory(req.FromCategory) || !attendance.IsValidCategory(req.ToCategory) {
		return nil, membershiperrors.ErrUnknownCategory
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &BulkRecategorizeResponse{}
	for _, m := range Reconcile(rows) {
		if m.Category != req.FromCategory {
			continue
		}
		out.Matched++

		res, err := s.recategorizeOne(ctx, m.Name, req.ToCategory)
		if err != nil {
			// Rows can vanish mid-batch under concurrent edits.
			if err == membershiperrors.ErrMemberNotFound {
				out.Skipped++
				continue
			}
			return nil, err
		}
		if res.Changed {
			out.Updated++
		} else {
			out.Skipped++
		}
	}
	return out, nil
}

func (s *service) Import(ctx context.Context, req ImportRequest) (*ImportResponse, error) {
	out := &ImportResponse{}
	now := time.Now().UTC()

	for _, entry := range req.Members {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			out.Skipped++
			continue
		}

		existing, err := s.repo.FindByNormalizedName(ctx, normalizeName(name))
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			out.Skipped++
			continue
		}

		category := strings.TrimSpace(entry.Category)
		if category == "" {
			category = attendance.CategoryOther
		}
		if !attendance.IsValidCategory(category) {
			out.Skipped++
			continue
		}

		recordedAt := now
		if err := s.repo.Create(ctx, &Member{
			Name:       name,
			Category:   category,
			RecordedAt: &recordedAt,
		}); err != nil {
			return nil, err
		}
		out.Imported++
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}
	if err := s.recorder.Record(ctx, audit.MembersImported{
		Imported: out.Imported,
		Skipped:  out.Skipped,
		Source:   source,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return out, nil
}

func (s *service) LookupCategory(ctx context.Context, name string) (string, bool, error) {
	rows, err := s.repo.FindByNormalizedName(ctx, normalizeName(name))
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return Reconcile(rows)[0].Category, true, nil
}

func (s *service) CreateMember(ctx context.Context, name, category string) error {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &Member{
		Name:       strings.TrimSpace(name),
		Category:   category,
		RecordedAt: &now,
	})
}
