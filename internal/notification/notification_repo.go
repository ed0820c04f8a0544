package notification

import (
	"context"

	"go-onboard/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindPage(ctx context.Context, page, limit int) ([]Notification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindPage(ctx context.Context, page, limit int) ([]Notification, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []Notification
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Scopes(scope.Paginate(page, limit)).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) CountUnread(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("read = ?", false).
		Count(&total).Error
	return total, err
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("read = ?", false).
		Update("read", true).Error
}
