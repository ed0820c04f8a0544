package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-onboard/internal/onboarding"
	"go-onboard/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// OptionsCacheKey is shared with the department service, whose cascade
// delete also invalidates the labeled task options.
const OptionsCacheKey = "tasks:options"

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	GetOptions(ctx context.Context) ([]TaskOptionResponse, error)
	ListByDepartment(ctx context.Context, deptID string, filter DepartmentTaskFilter) ([]DepartmentTaskResponse, int64, error)
	CategoriesByDepartment(ctx context.Context, deptID string) ([]string, error)
	ListBySupervisor(ctx context.Context, supervisorID string) ([]SupervisingTaskResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db             *gorm.DB
	repo           Repository
	onboardingRepo onboarding.Repository
	rdb            *redis.Client
	sf             *singleflight.Group
	logger         *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	onboardingRepo onboarding.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		onboardingRepo: onboardingRepo,
		rdb:            rdb,
		sf:             &singleflight.Group{},
		logger:         l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create task requested",
		zap.String("request_id", rid),
		zap.String("dept_id", req.DeptID),
		zap.String("category", req.Category),
	)

	t := &Task{
		ID:           uuid.New(),
		Desc:         req.Desc,
		Category:     req.Category,
		DeptID:       uuid.MustParse(req.DeptID),
		SupervisorID: uuidPtr(req.SupervisorID),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetOptions(ctx context.Context) ([]TaskOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []TaskOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Collapse concurrent misses; this list backs every assignment form.
	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]TaskOptionResponse, len(rows))
		for i, row := range rows {
			resp[i] = TaskOptionResponse{
				ID:                row.ID,
				Label:             fmt.Sprintf("[%s] %s", row.DeptName, row.Desc),
				Value:             row.ID,
				DeptID:            row.DeptID,
				CurrentSupervisor: row.SupervisorName,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]TaskOptionResponse), nil
}

func (s *service) ListByDepartment(ctx context.Context, deptID string, filter DepartmentTaskFilter) ([]DepartmentTaskResponse, int64, error) {
	rows, total, err := s.repo.FindPageByDepartment(ctx, deptID, filter)
	if err != nil {
		s.logger.Error("list department tasks failed", zap.String("dept_id", deptID), zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]DepartmentTaskResponse, len(rows))
	for i, row := range rows {
		resp[i] = DepartmentTaskResponse{
			ID:             row.ID,
			Desc:           row.Desc,
			Category:       row.Category,
			SupervisorID:   row.SupervisorID,
			SupervisorName: row.SupervisorName,
		}
	}
	return resp, total, nil
}

func (s *service) CategoriesByDepartment(ctx context.Context, deptID string) ([]string, error) {
	categories, err := s.repo.FindCategoriesByDepartment(ctx, deptID)
	if err != nil {
		s.logger.Error("list department categories failed", zap.String("dept_id", deptID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return categories, nil
}

func (s *service) ListBySupervisor(ctx context.Context, supervisorID string) ([]SupervisingTaskResponse, error) {
	rows, err := s.repo.FindBySupervisor(ctx, supervisorID)
	if err != nil {
		s.logger.Error("list supervising tasks failed", zap.String("supervisor_id", supervisorID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]SupervisingTaskResponse, len(rows))
	for i, row := range rows {
		resp[i] = SupervisingTaskResponse{
			ID:       row.ID,
			Desc:     row.Desc,
			Category: row.Category,
			DeptID:   row.DeptID,
			DeptName: row.DeptName,
		}
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update task requested",
		zap.String("request_id", rid),
		zap.String("task_id", id),
	)

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	t.Desc = req.Desc
	t.Category = req.Category

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update task success", zap.String("task_id", id))
	return mapToResponse(*t), nil
}

// Delete removes the task and every onboarding row pointing at it in one
// transaction; children go first so the backend never sees an orphan.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete task requested",
		zap.String("request_id", rid),
		zap.String("task_id", id),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete task begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qOnboarding := s.onboardingRepo.WithTx(tx)
	qTasks := s.repo.WithTx(tx)

	if err := qOnboarding.DeleteByTask(ctx, id); err != nil {
		s.logger.Error("delete task onboarding cleanup failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qTasks.Delete(ctx, id); err != nil {
		s.logger.Error("delete task failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete task commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete task success", zap.String("task_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate task options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func mapToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID.String(),
		Desc:         t.Desc,
		Category:     t.Category,
		DeptID:       t.DeptID.String(),
		SupervisorID: uuidToString(t.SupervisorID),
	}
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
