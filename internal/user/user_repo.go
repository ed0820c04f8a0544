package user

import (
	"context"

	"go-onboard/internal/shared/scope"

	"gorm.io/gorm"
)

// UserWithDeptRow flattens the optional department join for listings.
type UserWithDeptRow struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Role     string
	DeptID   string
	DeptName string
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindRowByID(ctx context.Context, id string) (*UserWithDeptRow, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindPage(ctx context.Context, filter ListFilter) ([]UserWithDeptRow, int64, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	UnassignDepartment(ctx context.Context, deptID string) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindRowByID(ctx context.Context, id string) (*UserWithDeptRow, error) {
	var row UserWithDeptRow
	res := r.db.WithContext(ctx).
		Table("users").
		Select("users.id::text AS id, users.name AS name, users.email AS email, COALESCE(users.phone, '') AS phone, users.role AS role, COALESCE(users.dept_id::text, '') AS dept_id, COALESCE(departments.name, '') AS dept_name").
		Joins("LEFT JOIN departments ON departments.id = users.dept_id").
		Where("users.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindPage(ctx context.Context, filter ListFilter) ([]UserWithDeptRow, int64, error) {
	base := r.db.WithContext(ctx).Model(&User{})
	if filter.Search != "" {
		base = base.Where("users.name ILIKE @q OR users.email ILIKE @q",
			map[string]any{"q": "%" + filter.Search + "%"})
	}
	if filter.Role != "" {
		base = base.Where("users.role = ?", filter.Role)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []UserWithDeptRow
	err := base.Session(&gorm.Session{}).
		Select("users.id::text AS id, users.name AS name, users.email AS email, COALESCE(users.phone, '') AS phone, users.role AS role, COALESCE(users.dept_id::text, '') AS dept_id, COALESCE(departments.name, '') AS dept_name").
		Joins("LEFT JOIN departments ON departments.id = users.dept_id").
		Order("users.name ASC").
		Scopes(scope.Paginate(filter.Page, filter.Limit)).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UnassignDepartment(ctx context.Context, deptID string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("dept_id = ?", deptID).
		Update("dept_id", nil).Error
}
