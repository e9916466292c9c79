package membership

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=membership_repo.go -destination=mock/membership_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *Member) error
	FindAll(ctx context.Context) ([]Member, error)
	FindByNormalizedName(ctx context.Context, normalized string) ([]Member, error)
	UpdateNameByNormalizedName(ctx context.Context, normalizedOld, newName string) (int64, error)
	UpdateCategoryByNormalizedName(ctx context.Context, normalized, category string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Member, error) {
	var rows []Member
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByNormalizedName(ctx context.Context, normalized string) ([]Member, error) {
	var rows []Member
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", normalized).
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateNameByNormalizedName(ctx context.Context, normalizedOld, newName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("LOWER(TRIM(name)) = ?", normalizedOld).
		Update("name", newName)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateCategoryByNormalizedName(ctx context.Context, normalized, category string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("LOWER(TRIM(name)) = ?", normalized).
		Update("category", category)
	return res.RowsAffected, res.Error
}
