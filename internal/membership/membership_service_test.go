package membership

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-chms/internal/attendance"
	"go-chms/internal/audit"
	membershiperrors "go-chms/internal/membership/errors"
)

type fakeRepo struct {
	createFn               func(ctx context.Context, m *Member) error
	findAllFn              func(ctx context.Context) ([]Member, error)
	findByNormalizedNameFn func(ctx context.Context, normalized string) ([]Member, error)
	updateNameFn           func(ctx context.Context, normalizedOld, newName string) (int64, error)
	updateCategoryFn       func(ctx context.Context, normalized, category string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, m *Member) error {
	return f.createFn(ctx, m)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]Member, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindByNormalizedName(ctx context.Context, normalized string) ([]Member, error) {
	return f.findByNormalizedNameFn(ctx, normalized)
}

func (f *fakeRepo) UpdateNameByNormalizedName(ctx context.Context, normalizedOld, newName string) (int64, error) {
	if f.updateNameFn == nil {
		return 0, nil
	}
	return f.updateNameFn(ctx, normalizedOld, newName)
}

func (f *fakeRepo) UpdateCategoryByNormalizedName(ctx context.Context, normalized, category string) (int64, error) {
	if f.updateCategoryFn == nil {
		return 0, nil
	}
	return f.updateCategoryFn(ctx, normalized, category)
}

type fakeAttendanceRepo struct {
	updateNameFn     func(ctx context.Context, normalizedOld, newName string) (int64, error)
	updateCategoryFn func(ctx context.Context, normalized, category string) (int64, error)
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) FindAll(ctx context.Context) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) FindByServiceAndDate(ctx context.Context, serviceName string, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) DistinctServices(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) DeleteByService(ctx context.Context, serviceName string) (int64, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) UpdateNameByNormalizedName(ctx context.Context, normalizedOld, newName string) (int64, error) {
	if f.updateNameFn == nil {
		return 0, nil
	}
	return f.updateNameFn(ctx, normalizedOld, newName)
}

func (f *fakeAttendanceRepo) UpdateCategoryByNormalizedName(ctx context.Context, normalized, category string) (int64, error) {
	if f.updateCategoryFn == nil {
		return 0, nil
	}
	return f.updateCategoryFn(ctx, normalized, category)
}

type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Record(ctx context.Context, ev audit.Event) error {
	f.events = append(f.events, ev)
	return nil
}

func TestRenameNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeRecorder{})

	_, err := svc.Rename(context.Background(), RenameRequest{OldName: "Ghost", NewName: "Gone"})

	assert.ErrorIs(t, err, membershiperrors.ErrMemberNotFound)
}

func TestRenameRejectsClash(t *testing.T) {
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			switch normalized {
			case "john doe":
				return []Member{{Name: "John Doe"}}, nil
			case "jane roe":
				return []Member{{Name: "Jane Roe"}}, nil
			}
			return nil, nil
		},
	}
	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeRecorder{})

	_, err := svc.Rename(context.Background(), RenameRequest{OldName: "John Doe", NewName: "jane ROE"})

	assert.ErrorIs(t, err, membershiperrors.ErrDuplicateName)
}

func TestRenameSameNormalizedNameIsAllowed(t *testing.T) {
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			if normalized == "john doe" {
				return []Member{{Name: "john doe"}}, nil
			}
			return nil, nil
		},
		updateNameFn: func(ctx context.Context, normalizedOld, newName string) (int64, error) {
			return 1, nil
		},
	}
	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeRecorder{})

	res, err := svc.Rename(context.Background(), RenameRequest{OldName: "john doe", NewName: "John Doe"})

	assert.NoError(t, err)
	assert.Equal(t, "John Doe", res.NewName)
}

func TestRenameCascadesAndAudits(t *testing.T) {
	var attOld, attNew string
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			if normalized == "john doe" {
				return []Member{{Name: "John Doe"}}, nil
			}
			return nil, nil
		},
		updateNameFn: func(ctx context.Context, normalizedOld, newName string) (int64, error) {
			return 2, nil
		},
	}
	attRepo := &fakeAttendanceRepo{
		updateNameFn: func(ctx context.Context, normalizedOld, newName string) (int64, error) {
			attOld, attNew = normalizedOld, newName
			return 7, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, attRepo, recorder)

	res, err := svc.Rename(context.Background(), RenameRequest{OldName: " John Doe ", NewName: "Johnny Doe"})

	assert.NoError(t, err)
	assert.Equal(t, "john doe", attOld)
	assert.Equal(t, "Johnny Doe", attNew)
	assert.Equal(t, int64(2), res.MembershipRows)
	assert.Equal(t, int64(7), res.AttendanceRows)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "Name Update", recorder.events[0].Action())
}

func TestRecategorizeIdempotent(t *testing.T) {
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			return []Member{{Name: "John Doe", Category: "L200"}}, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, &fakeAttendanceRepo{}, recorder)

	res, err := svc.Recategorize(context.Background(), RecategorizeRequest{Name: "John Doe", Category: "L200"})

	assert.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, recorder.events)
}

func TestRecategorizeCascades(t *testing.T) {
	var attCategory string
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			return []Member{{Name: "John Doe", Category: "L100"}}, nil
		},
		updateCategoryFn: func(ctx context.Context, normalized, category string) (int64, error) {
			return 1, nil
		},
	}
	attRepo := &fakeAttendanceRepo{
		updateCategoryFn: func(ctx context.Context, normalized, category string) (int64, error) {
			attCategory = category
			return 3, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, attRepo, recorder)

	res, err := svc.Recategorize(context.Background(), RecategorizeRequest{Name: "John Doe", Category: "L200"})

	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "L200", attCategory)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "Category Update", recorder.events[0].Action())
}

func TestRecategorizeUnknownCategory(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeAttendanceRepo{}, &fakeRecorder{})

	_, err := svc.Recategorize(context.Background(), RecategorizeRequest{Name: "John Doe", Category: "L500"})

	assert.ErrorIs(t, err, membershiperrors.ErrUnknownCategory)
}

func TestBulkRecategorizeAuditsPerMember(t *testing.T) {
	members := map[string]string{
		"john doe": "L100",
		"jane roe": "L100",
		"sam k":    "L200",
	}
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Member, error) {
			return []Member{
				{Name: "John Doe", Category: "L100"},
				{Name: "Jane Roe", Category: "L100"},
				{Name: "Sam K", Category: "L200"},
			}, nil
		},
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			category, ok := members[normalized]
			if !ok {
				return nil, nil
			}
			return []Member{{Name: normalized, Category: category}}, nil
		},
		updateCategoryFn: func(ctx context.Context, normalized, category string) (int64, error) {
			return 1, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, &fakeAttendanceRepo{}, recorder)

	res, err := svc.BulkRecategorize(context.Background(), BulkRecategorizeRequest{
		FromCategory: "L100",
		ToCategory:   "L200",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, 0, res.Skipped)
	assert.Len(t, recorder.events, 2)
	assert.Equal(t, "Category Update", recorder.events[0].Action())
}

func TestBulkRecategorizeSkipsVanishedMember(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Member, error) {
			return []Member{{Name: "John Doe", Category: "L100"}}, nil
		},
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			return nil, nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, &fakeAttendanceRepo{}, recorder)

	res, err := svc.BulkRecategorize(context.Background(), BulkRecategorizeRequest{
		FromCategory: "L100",
		ToCategory:   "L200",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, recorder.events)
}

func TestBulkRecategorizeUnknownCategory(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeAttendanceRepo{}, &fakeRecorder{})

	_, err := svc.BulkRecategorize(context.Background(), BulkRecategorizeRequest{
		FromCategory: "L100",
		ToCategory:   "L500",
	})

	assert.ErrorIs(t, err, membershiperrors.ErrUnknownCategory)
}

func TestImportSkipsExistingAndBlank(t *testing.T) {
	created := 0
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			if normalized == "john doe" {
				return []Member{{Name: "John Doe"}}, nil
			}
			return nil, nil
		},
		createFn: func(ctx context.Context, m *Member) error {
			created++
			return nil
		},
	}
	recorder := &fakeRecorder{}
	svc := NewService(repo, &fakeAttendanceRepo{}, recorder)

	res, err := svc.Import(context.Background(), ImportRequest{
		Members: []ImportEntry{
			{Name: "John Doe", Category: "L100"},
			{Name: "   "},
			{Name: "Jane Roe", Category: "L300"},
			{Name: "Ada Obi"},
		},
		Source: "csv",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 2, created)
	assert.Len(t, recorder.events, 1)
	assert.Equal(t, "Members Imported", recorder.events[0].Action())
}

func TestLookupCategoryUsesReconciledWinner(t *testing.T) {
	later := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		findByNormalizedNameFn: func(ctx context.Context, normalized string) ([]Member, error) {
			return []Member{
				{Name: "John Doe", Category: "L100"},
				{Name: "john doe", Category: "L300", RecordedAt: &later},
			}, nil
		},
	}
	svc := NewService(repo, &fakeAttendanceRepo{}, &fakeRecorder{})

	category, found, err := svc.LookupCategory(context.Background(), "  JOHN DOE ")

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "L300", category)
}
