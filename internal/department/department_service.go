package department

import (
	"context"
	"encoding/json"
	"time"

	"go-onboard/internal/onboarding"
	"go-onboard/internal/shared/contextutil"
	"go-onboard/internal/task"
	"go-onboard/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	optionsCacheKey = "departments:options"
	optionsCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]DepartmentResponse, int64, error)
	GetOptions(ctx context.Context) ([]DepartmentOptionResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db             *gorm.DB
	repo           Repository
	userRepo       user.Repository
	taskRepo       task.Repository
	onboardingRepo onboarding.Repository
	rdb            *redis.Client
	sf             *singleflight.Group
	logger         *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	userRepo user.Repository,
	taskRepo task.Repository,
	onboardingRepo onboarding.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		onboardingRepo: onboardingRepo,
		rdb:            rdb,
		sf:             &singleflight.Group{},
		logger:         l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	d := &Department{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("create department failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("dept_id", d.ID.String()),
	)
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]DepartmentResponse, int64, error) {
	rows, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]DepartmentResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]DepartmentOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, optionsCacheKey).Result(); err == nil {
			var resp []DepartmentOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(optionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]DepartmentOptionResponse, len(rows))
		for i, row := range rows {
			resp[i] = DepartmentOptionResponse{
				Label: row.Name,
				Value: row.ID.String(),
			}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, optionsCacheKey, payload, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("department options cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]DepartmentOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	d.Name = req.Name
	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("update department failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update department success", zap.String("request_id", rid), zap.String("dept_id", id))
	return mapToResponse(*d), nil
}

// Delete tears a department down in dependency order inside one
// transaction: users lose their department pointer but keep their
// onboarding rows only until the rows' tasks go away, then the catalog
// tasks are removed, then the department itself. A failure at any step
// rolls back the whole cascade.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete department requested",
		zap.String("request_id", rid),
		zap.String("dept_id", id),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qUsers := s.userRepo.WithTx(tx)
	qTasks := s.taskRepo.WithTx(tx)
	qOnboarding := s.onboardingRepo.WithTx(tx)

	if err := qUsers.UnassignDepartment(ctx, id); err != nil {
		s.logger.Error("delete department unassign users failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	taskIDs, err := qTasks.FindIDsByDepartment(ctx, id)
	if err != nil {
		s.logger.Error("delete department task lookup failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if len(taskIDs) > 0 {
		if err := qOnboarding.DeleteByTaskIDs(ctx, taskIDs); err != nil {
			s.logger.Error("delete department onboarding cleanup failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := qTasks.DeleteByDepartment(ctx, id); err != nil {
			s.logger.Error("delete department task cleanup failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
	}

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete department commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete department success",
		zap.String("request_id", rid),
		zap.String("dept_id", id),
		zap.Int("removed_tasks", len(taskIDs)),
	)
	return nil
}

// Task option labels embed the department name, so both caches go.
func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, optionsCacheKey, task.OptionsCacheKey).Err(); err != nil {
		s.logger.Warn("options cache invalidation failed", zap.Error(err))
	}
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID.String(),
		Name: d.Name,
	}
}
