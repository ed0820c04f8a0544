package onboarding

import (
	"context"

	"gorm.io/gorm"
)

// OnboardingTaskRow is the flat join shape used by per-user listings.
type OnboardingTaskRow struct {
	ID        string
	TaskID    string
	Desc      string
	Category  string
	Completed bool
}

//go:generate mockgen -source=onboarding_repo.go -destination=mock/onboarding_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	BulkCreate(ctx context.Context, rows []OnboardingTask) error
	FindByID(ctx context.Context, id string) (*OnboardingTask, error)
	FindByUser(ctx context.Context, userID string) ([]OnboardingTaskRow, error)
	FindCategoriesByUser(ctx context.Context, userID string) ([]string, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	DeleteByUser(ctx context.Context, userID string) error
	DeleteByTask(ctx context.Context, taskID string) error
	DeleteByTaskIDs(ctx context.Context, taskIDs []string) error
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

func (r *repository) BulkCreate(ctx context.Context, rows []OnboardingTask) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*OnboardingTask, error) {
	var row OnboardingTask
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) FindByUser(ctx context.Context, userID string) ([]OnboardingTaskRow, error) {
	var rows []OnboardingTaskRow
	err := r.db.WithContext(ctx).
		Table("onboarding_tasks").
		Select("onboarding_tasks.id::text AS id, onboarding_tasks.task_id::text AS task_id, tasks.description AS \"desc\", tasks.category AS category, onboarding_tasks.completed AS completed").
		Joins("JOIN tasks ON tasks.id = onboarding_tasks.task_id").
		Where("onboarding_tasks.user_id = ?", userID).
		Order("tasks.description ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindCategoriesByUser(ctx context.Context, userID string) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Table("onboarding_tasks").
		Distinct("tasks.category").
		Joins("JOIN tasks ON tasks.id = onboarding_tasks.task_id").
		Where("onboarding_tasks.user_id = ?", userID).
		Pluck("tasks.category", &categories).Error
	return categories, err
}

func (r *repository) SetCompleted(ctx context.Context, id string, completed bool) error {
	res := r.db.WithContext(ctx).
		Model(&OnboardingTask{}).
		Where("id = ?", id).
		Update("completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&OnboardingTask{}).Error
}

func (r *repository) DeleteByTask(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Delete(&OnboardingTask{}).Error
}

func (r *repository) DeleteByTaskIDs(ctx context.Context, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Delete(&OnboardingTask{}).Error
}
