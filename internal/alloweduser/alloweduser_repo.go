package alloweduser

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=alloweduser_repo.go -destination=mock/alloweduser_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *AllowedUser) error
	FindAll(ctx context.Context) ([]AllowedUser, error)
	FindByEmail(ctx context.Context, email string) (*AllowedUser, error)
	UpdateRole(ctx context.Context, email, role, updatedBy string) (int64, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *AllowedUser) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return mapStorageError(err)
	}
	return nil
}

func (r *repository) FindAll(ctx context.Context) ([]AllowedUser, error) {
	var rows []AllowedUser
	err := r.db.WithContext(ctx).
		Order("email ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*AllowedUser, error) {
	var row AllowedUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *repository) UpdateRole(ctx context.Context, email, role, updatedBy string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&AllowedUser{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"role":       role,
			"updated_by": updatedBy,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&AllowedUser{})
	return res.RowsAffected, res.Error
}
