package task

import (
	"context"

	"go-onboard/internal/shared/scope"

	"gorm.io/gorm"
)

// TaskOptionRow joins in the department and supervisor names for the
// options listing.
type TaskOptionRow struct {
	ID             string
	Desc           string
	DeptID         string
	DeptName       string
	SupervisorName string
}

// DepartmentTaskRow is a task with its supervisor name resolved.
type DepartmentTaskRow struct {
	ID             string
	Desc           string
	Category       string
	SupervisorID   string
	SupervisorName string
}

// SupervisingTaskRow is a task with its owning department name resolved.
type SupervisingTaskRow struct {
	ID       string
	Desc     string
	Category string
	DeptID   string
	DeptName string
}

type DepartmentTaskFilter struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	FindByDepartment(ctx context.Context, deptID string) ([]Task, error)
	FindIDsByDepartment(ctx context.Context, deptID string) ([]string, error)
	FindPageByDepartment(ctx context.Context, deptID string, filter DepartmentTaskFilter) ([]DepartmentTaskRow, int64, error)
	FindCategoriesByDepartment(ctx context.Context, deptID string) ([]string, error)
	FindOptions(ctx context.Context) ([]TaskOptionRow, error)
	FindBySupervisor(ctx context.Context, supervisorID string) ([]SupervisingTaskRow, error)
	CountByIDs(ctx context.Context, ids []string) (int64, error)
	AssignSupervisor(ctx context.Context, taskIDs []string, supervisorID string) error
	ClearSupervisor(ctx context.Context, supervisorID string) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	DeleteByDepartment(ctx context.Context, deptID string) error
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindByDepartment(ctx context.Context, deptID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Where("dept_id = ?", deptID).
		Order("description ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindIDsByDepartment(ctx context.Context, deptID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("dept_id = ?", deptID).
		Pluck("id::text", &ids).Error
	return ids, err
}

func (r *repository) FindPageByDepartment(ctx context.Context, deptID string, filter DepartmentTaskFilter) ([]DepartmentTaskRow, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("tasks.dept_id = ?", deptID).
		Scopes(scope.ILike("tasks.description", filter.Search))
	if filter.Category != "" {
		base = base.Where("tasks.category = ?", filter.Category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []DepartmentTaskRow
	err := base.Session(&gorm.Session{}).
		Select("tasks.id::text AS id, tasks.description AS \"desc\", tasks.category AS category, COALESCE(tasks.supervisor_id::text, '') AS supervisor_id, COALESCE(users.name, '') AS supervisor_name").
		Joins("LEFT JOIN users ON users.id = tasks.supervisor_id").
		Order("tasks.description ASC").
		Scopes(scope.Paginate(filter.Page, filter.Limit)).
		Scan(&rows).Error
	return rows, total, err
}

func (r *repository) FindCategoriesByDepartment(ctx context.Context, deptID string) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&Task{}).
		Distinct("category").
		Where("dept_id = ?", deptID).
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *repository) FindOptions(ctx context.Context) ([]TaskOptionRow, error) {
	var rows []TaskOptionRow
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.id::text AS id, tasks.description AS \"desc\", tasks.dept_id::text AS dept_id, departments.name AS dept_name, COALESCE(users.name, '') AS supervisor_name").
		Joins("JOIN departments ON departments.id = tasks.dept_id").
		Joins("LEFT JOIN users ON users.id = tasks.supervisor_id").
		Order("departments.name ASC, tasks.description ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindBySupervisor(ctx context.Context, supervisorID string) ([]SupervisingTaskRow, error) {
	var rows []SupervisingTaskRow
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("tasks.id::text AS id, tasks.description AS \"desc\", tasks.category AS category, tasks.dept_id::text AS dept_id, departments.name AS dept_name").
		Joins("JOIN departments ON departments.id = tasks.dept_id").
		Where("tasks.supervisor_id = ?", supervisorID).
		Order("departments.name ASC, tasks.description ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *repository) AssignSupervisor(ctx context.Context, taskIDs []string, supervisorID string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id IN ?", taskIDs).
		Update("supervisor_id", supervisorID).Error
}

func (r *repository) ClearSupervisor(ctx context.Context, supervisorID string) error {
	return r.db.WithContext(ctx).
		Model(&Task{}).
		Where("supervisor_id = ?", supervisorID).
		Update("supervisor_id", nil).Error
}

func (r *repository) Update(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByDepartment(ctx context.Context, deptID string) error {
	return r.db.WithContext(ctx).
		Where("dept_id = ?", deptID).
		Delete(&Task{}).Error
}
