package user

import (
	"context"
	"encoding/json"
	"time"

	"go-onboard/internal/events"
	"go-onboard/internal/messaging/kafka"
	"go-onboard/internal/onboarding"
	"go-onboard/internal/shared/contextutil"
	"go-onboard/internal/shared/format"
	"go-onboard/internal/task"
	usererrors "go-onboard/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	GetByEmail(ctx context.Context, email string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

// service owns the consistency rules around user rows: onboarding rows
// exist only for the user's current department, and supervised tasks
// point only at live supervisors. Every multi-row change runs in one
// transaction.
type service struct {
	db             *gorm.DB
	repo           Repository
	taskRepo       task.Repository
	onboardingRepo onboarding.Repository
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	taskRepo task.Repository,
	onboardingRepo onboarding.Repository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, taskRepo, onboardingRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	taskRepo task.Repository,
	onboardingRepo onboarding.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:             db,
		repo:           repo,
		taskRepo:       taskRepo,
		onboardingRepo: onboardingRepo,
		outbox:         outbox,
		logger:         l,
	}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("role", string(req.Role)),
	)

	u := &User{
		ID:     uuid.New(),
		Name:   req.Name,
		Email:  req.Email,
		Phone:  normalizePhone(req.Phone),
		Role:   req.Role,
		DeptID: uuidPtr(req.DeptID),
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hash)
	}

	switch {
	case req.Role == RoleOnboarding && u.DeptID != nil:
		return s.createOnboardingUser(ctx, u)
	case req.Role == RoleSupervisor && len(req.SupervisingTaskIDs) > 0:
		return s.createSupervisorUser(ctx, u, req.SupervisingTaskIDs)
	default:
		if err := s.repo.Create(ctx, u); err != nil {
			s.logger.Error("create user persist failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, mapRepositoryError(err)
		}
		s.logger.Info("create user success",
			zap.String("request_id", rid),
			zap.String("user_id", u.ID.String()),
			zap.String("role", string(u.Role)),
		)
		return mapToResponse(*u), nil
	}
}

// createOnboardingUser reads the department's catalog first, then writes
// the user row and one pending onboarding row per catalog task atomically.
// A task added to the catalog between the read and the commit is picked
// up by the next reassignment, not retrofitted.
func (s *service) createOnboardingUser(ctx context.Context, u *User) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	deptID := u.DeptID.String()

	tasks, err := s.taskRepo.FindByDepartment(ctx, deptID)
	if err != nil {
		s.logger.Error("create user catalog read failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	if err := s.onboardingRepo.WithTx(tx).BulkCreate(ctx, provisionRows(u.ID, tasks)); err != nil {
		s.logger.Error("create user provisioning failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	if err := s.writeLifecycleEvent(ctx, tx, events.UserOnboardedEventType, u, deptID, len(tasks)); err != nil {
		s.logger.Error("create user outbox write failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create user commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.String("dept_id", deptID),
		zap.Int("provisioned_tasks", len(tasks)),
	)
	return mapToResponse(*u), nil
}

// createSupervisorUser connects the user to the given tasks without
// touching assignments to other supervisors.
func (s *service) createSupervisorUser(ctx context.Context, u *User, taskIDs []string) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	ids := uniqueStrings(taskIDs)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qTasks := s.taskRepo.WithTx(tx)

	count, err := qTasks.CountByIDs(ctx, ids)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if count != int64(len(ids)) {
		s.logger.Warn("create user rejected",
			zap.String("request_id", rid),
			zap.Int("requested_tasks", len(ids)),
			zap.Int64("known_tasks", count),
		)
		return UserResponse{}, usererrors.ErrUnknownSupervisedTask
	}

	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	if err := qTasks.AssignSupervisor(ctx, ids, u.ID.String()); err != nil {
		s.logger.Error("create user task assignment failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create user commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
		zap.Int("supervised_tasks", len(ids)),
	)
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, int64, error) {
	rows, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	resp := make([]UserResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapRowToResponse(row)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapRowToResponse(*row), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (UserResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return s.GetByID(ctx, u.ID.String())
}

// Update dispatches on the user's current role, not on anything in the
// request body. Role itself is immutable after creation.
func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	switch {
	case cur.Role == RoleOnboarding && !sameDept(cur.DeptID, req.DeptID):
		return s.reassignOnboardingUser(ctx, cur, req)
	case cur.Role == RoleSupervisor && req.SupervisingTaskIDs != nil:
		return s.updateSupervisorUser(ctx, cur, req)
	default:
		applyScalarUpdate(cur, req)
		if err := s.repo.Update(ctx, cur); err != nil {
			s.logger.Error("update user failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, mapRepositoryError(err)
		}
		s.logger.Info("update user success", zap.String("request_id", rid), zap.String("user_id", id))
		return mapToResponse(*cur), nil
	}
}

// reassignOnboardingUser drops every onboarding row the user has,
// including completed ones, and provisions the new department's catalog
// from scratch. Progress never survives a department change.
func (s *service) reassignOnboardingUser(ctx context.Context, cur *User, req UpdateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	var tasks []task.Task
	if req.DeptID != nil {
		var err error
		tasks, err = s.taskRepo.FindByDepartment(ctx, *req.DeptID)
		if err != nil {
			s.logger.Error("reassign user catalog read failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, mapRepositoryError(err)
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.onboardingRepo.WithTx(tx).DeleteByUser(ctx, cur.ID.String()); err != nil {
		s.logger.Error("reassign user cleanup failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	applyScalarUpdate(cur, req)
	cur.DeptID = uuidPtr(req.DeptID)
	if err := s.repo.WithTx(tx).Update(ctx, cur); err != nil {
		s.logger.Error("reassign user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if len(tasks) > 0 {
		if err := s.onboardingRepo.WithTx(tx).BulkCreate(ctx, provisionRows(cur.ID, tasks)); err != nil {
			s.logger.Error("reassign user provisioning failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, mapRepositoryError(err)
		}
	}
	if req.DeptID != nil {
		if err := s.writeLifecycleEvent(ctx, tx, events.UserReassignedEventType, cur, *req.DeptID, len(tasks)); err != nil {
			s.logger.Error("reassign user outbox write failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("reassign user commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("reassign user success",
		zap.String("request_id", rid),
		zap.String("user_id", cur.ID.String()),
		zap.Int("provisioned_tasks", len(tasks)),
	)
	return mapToResponse(*cur), nil
}

// updateSupervisorUser replaces the supervised task set wholesale: any
// task not in the request is released, then the requested ones are
// claimed. Creation connects without releasing; update replaces.
func (s *service) updateSupervisorUser(ctx context.Context, cur *User, req UpdateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	ids := uniqueStrings(req.SupervisingTaskIDs)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qTasks := s.taskRepo.WithTx(tx)

	if len(ids) > 0 {
		count, err := qTasks.CountByIDs(ctx, ids)
		if err != nil {
			return UserResponse{}, mapRepositoryError(err)
		}
		if count != int64(len(ids)) {
			return UserResponse{}, usererrors.ErrUnknownSupervisedTask
		}
	}

	if err := qTasks.ClearSupervisor(ctx, cur.ID.String()); err != nil {
		s.logger.Error("update user task release failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}
	if len(ids) > 0 {
		if err := qTasks.AssignSupervisor(ctx, ids, cur.ID.String()); err != nil {
			s.logger.Error("update user task assignment failed", zap.String("request_id", rid), zap.Error(err))
			return UserResponse{}, mapRepositoryError(err)
		}
	}

	applyScalarUpdate(cur, req)
	if err := s.repo.WithTx(tx).Update(ctx, cur); err != nil {
		s.logger.Error("update user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update user commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("update user success",
		zap.String("request_id", rid),
		zap.String("user_id", cur.ID.String()),
		zap.Int("supervised_tasks", len(ids)),
	)
	return mapToResponse(*cur), nil
}

// Delete removes the user together with everything that references it:
// the user's onboarding rows and any supervisor pointers on tasks.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete user requested",
		zap.String("request_id", rid),
		zap.String("user_id", id),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := s.onboardingRepo.WithTx(tx).DeleteByUser(ctx, id); err != nil {
		s.logger.Error("delete user onboarding cleanup failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.taskRepo.WithTx(tx).ClearSupervisor(ctx, id); err != nil {
		s.logger.Error("delete user task release failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete user commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete user success", zap.String("user_id", id))
	return nil
}

func (s *service) writeLifecycleEvent(ctx context.Context, tx *gorm.DB, eventType string, u *User, deptID string, taskCount int) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.UserLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		UserID:     u.ID.String(),
		UserName:   u.Name,
		DeptID:     deptID,
		TaskCount:  taskCount,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "user",
		AggregateID:   u.ID.String(),
		EventType:     eventType,
		Topic:         events.UserLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func provisionRows(userID uuid.UUID, tasks []task.Task) []onboarding.OnboardingTask {
	rows := make([]onboarding.OnboardingTask, len(tasks))
	for i, t := range tasks {
		rows[i] = onboarding.OnboardingTask{
			ID:     uuid.New(),
			UserID: userID,
			TaskID: t.ID,
		}
	}
	return rows
}

// applyScalarUpdate writes the plain columns. Department membership is
// stored for every role, but only written when the request carries it;
// the onboarding reassignment path overrides this and always writes it.
func applyScalarUpdate(u *User, req UpdateUserRequest) {
	u.Name = req.Name
	u.Email = req.Email
	u.Phone = normalizePhone(req.Phone)
	if req.DeptID != nil {
		u.DeptID = uuidPtr(req.DeptID)
	}
}

func sameDept(cur *uuid.UUID, next *string) bool {
	if cur == nil && next == nil {
		return true
	}
	if cur == nil || next == nil {
		return false
	}
	return cur.String() == *next
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	digits := format.PhoneDigits(*phone)
	if digits == "" {
		return nil
	}
	return &digits
}

func uuidPtr(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
	if u.Phone != nil {
		resp.Phone = format.PhoneNumber(*u.Phone)
	}
	if u.DeptID != nil {
		resp.DeptID = u.DeptID.String()
	}
	return resp
}

func mapRowToResponse(row UserWithDeptRow) UserResponse {
	resp := UserResponse{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Role:  row.Role,
	}
	if row.Phone != "" {
		resp.Phone = format.PhoneNumber(row.Phone)
	}
	if row.DeptID != "" {
		resp.DeptID = row.DeptID
		resp.Department = &UserDepartmentResponse{ID: row.DeptID, Name: row.DeptName}
	}
	return resp
}
