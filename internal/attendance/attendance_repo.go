package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindAll(ctx context.Context) ([]Attendance, error)
	FindByServiceAndDate(ctx context.Context, serviceName string, date time.Time) ([]Attendance, error)
	DistinctServices(ctx context.Context) ([]string, error)
	DeleteByService(ctx context.Context, serviceName string) (int64, error)

	// Cascade updates used by the membership reconciler. Matching is on the
	// normalized (trimmed, lowercased) name.
	UpdateNameByNormalizedName(ctx context.Context, normalizedOld, newName string) (int64, error)
	UpdateCategoryByNormalizedName(ctx context.Context, normalized, category string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByServiceAndDate(ctx context.Context, serviceName string, date time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("service_name = ?", serviceName).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Find(&rows).Error
	return rows, err
}

func (r *repository) DistinctServices(ctx context.Context) ([]string, error) {
	var services []string
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Distinct("service_name").
		Order("service_name ASC").
		Pluck("service_name", &services).Error
	return services, err
}

func (r *repository) DeleteByService(ctx context.Context, serviceName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("service_name = ?", serviceName).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateNameByNormalizedName(ctx context.Context, normalizedOld, newName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("LOWER(TRIM(name)) = ?", normalizedOld).
		Update("name", newName)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateCategoryByNormalizedName(ctx context.Context, normalized, category string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("LOWER(TRIM(name)) = ?", normalized).
		Update("category", category)
	return res.RowsAffected, res.Error
}
