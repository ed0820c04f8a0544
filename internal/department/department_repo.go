package department

import (
	"context"

	"go-onboard/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, d *Department) error
	FindByID(ctx context.Context, id string) (*Department, error)
	FindPage(ctx context.Context, filter ListFilter) ([]Department, int64, error)
	FindOptions(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var d Department
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindPage(ctx context.Context, filter ListFilter) ([]Department, int64, error) {
	base := r.db.WithContext(ctx).Model(&Department{})
	if filter.Search != "" {
		base = base.Scopes(scope.ILike("name", filter.Search))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Department
	err := base.Session(&gorm.Session{}).
		Order("name ASC").
		Scopes(scope.Paginate(filter.Page, filter.Limit)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Department, error) {
	var rows []Department
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, d *Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
