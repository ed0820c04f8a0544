package user_test

import (
	"context"
	"testing"

	"go-onboard/internal/department"
	"go-onboard/internal/onboarding"
	"go-onboard/internal/task"
	"go-onboard/internal/user"

	departmentMock "go-onboard/internal/department/mock"
	kafkaMock "go-onboard/internal/messaging/kafka/mock"
	onboardingMock "go-onboard/internal/onboarding/mock"
	taskMock "go-onboard/internal/task/mock"
	userMock "go-onboard/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// lifecycleState is the shared in-memory store the stateful mocks write
// through, so consecutive service calls observe each other's effects.
type lifecycleState struct {
	users map[string]*user.User
	tasks map[string][]task.Task // dept id -> catalog
	rows  []onboarding.OnboardingTask
}

func (s *lifecycleState) rowsForUser(userID uuid.UUID) []onboarding.OnboardingTask {
	var out []onboarding.OnboardingTask
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out
}

func (s *lifecycleState) dropRows(keep func(onboarding.OnboardingTask) bool) {
	var out []onboarding.OnboardingTask
	for _, row := range s.rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	s.rows = out
}

// TestOnboardingLifecycle chains the three operations that share the
// onboarding rows: provisioning on creation, re-provisioning on a
// department change, and the department delete cascade. After the final
// step the user must exist with no department and no task rows.
func TestOnboardingLifecycle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	engID := uuid.New()
	hrID := uuid.New()
	state := &lifecycleState{
		users: map[string]*user.User{},
		tasks: map[string][]task.Task{
			engID.String(): deptTasks(engID, 2),
			hrID.String():  deptTasks(hrID, 3),
		},
	}

	userRepo := userMock.NewMockRepository(ctrl)
	taskRepo := taskMock.NewMockRepository(ctrl)
	onboardingRepo := onboardingMock.NewMockRepository(ctrl)
	departmentRepo := departmentMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	userRepo.EXPECT().WithTx(gomock.Any()).Return(userRepo).AnyTimes()
	taskRepo.EXPECT().WithTx(gomock.Any()).Return(taskRepo).AnyTimes()
	onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(onboardingRepo).AnyTimes()
	departmentRepo.EXPECT().WithTx(gomock.Any()).Return(departmentRepo).AnyTimes()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()
	outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil).AnyTimes()

	userRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *user.User) error {
			cp := *u
			state.users[u.ID.String()] = &cp
			return nil
		}).AnyTimes()
	userRepo.EXPECT().FindByID(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*user.User, error) {
			u, ok := state.users[id]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			cp := *u
			return &cp, nil
		}).AnyTimes()
	userRepo.EXPECT().Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *user.User) error {
			cp := *u
			state.users[u.ID.String()] = &cp
			return nil
		}).AnyTimes()
	userRepo.EXPECT().UnassignDepartment(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, deptID string) error {
			for _, u := range state.users {
				if u.DeptID != nil && u.DeptID.String() == deptID {
					u.DeptID = nil
				}
			}
			return nil
		}).AnyTimes()

	taskRepo.EXPECT().FindByDepartment(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, deptID string) ([]task.Task, error) {
			return state.tasks[deptID], nil
		}).AnyTimes()
	taskRepo.EXPECT().FindIDsByDepartment(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, deptID string) ([]string, error) {
			var ids []string
			for _, tk := range state.tasks[deptID] {
				ids = append(ids, tk.ID.String())
			}
			return ids, nil
		}).AnyTimes()
	taskRepo.EXPECT().DeleteByDepartment(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, deptID string) error {
			delete(state.tasks, deptID)
			return nil
		}).AnyTimes()

	onboardingRepo.EXPECT().BulkCreate(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, rows []onboarding.OnboardingTask) error {
			state.rows = append(state.rows, rows...)
			return nil
		}).AnyTimes()
	onboardingRepo.EXPECT().DeleteByUser(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string) error {
			state.dropRows(func(row onboarding.OnboardingTask) bool {
				return row.UserID.String() != userID
			})
			return nil
		}).AnyTimes()
	onboardingRepo.EXPECT().DeleteByTaskIDs(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, taskIDs []string) error {
			doomed := map[string]bool{}
			for _, id := range taskIDs {
				doomed[id] = true
			}
			state.dropRows(func(row onboarding.OnboardingTask) bool {
				return !doomed[row.TaskID.String()]
			})
			return nil
		}).AnyTimes()

	departmentRepo.EXPECT().Delete(ctx, hrID.String()).Return(nil)

	userSvc := user.NewServiceWithOutbox(gormDB, userRepo, taskRepo, onboardingRepo, outbox)
	deptSvc := department.NewService(gormDB, departmentRepo, userRepo, taskRepo, onboardingRepo, nil)

	// Each step commits its own transaction.
	for i := 0; i < 3; i++ {
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
	}

	// Hire into Engineering: two pending rows.
	engStr := engID.String()
	created, err := userSvc.Create(ctx, user.CreateUserRequest{
		Name:   "New Hire",
		Email:  "hire@example.com",
		Role:   user.RoleOnboarding,
		DeptID: &engStr,
	})
	require.NoError(t, err)

	hired := state.users[created.ID]
	require.NotNil(t, hired)
	assert.Len(t, state.rowsForUser(hired.ID), 2)

	// Transfer to HR: the Engineering rows go away, three HR rows appear.
	hrStr := hrID.String()
	_, err = userSvc.Update(ctx, created.ID, user.UpdateUserRequest{
		Name:   "New Hire",
		Email:  "hire@example.com",
		DeptID: &hrStr,
	})
	require.NoError(t, err)

	require.NotNil(t, state.users[created.ID].DeptID)
	assert.Equal(t, hrID, *state.users[created.ID].DeptID)
	rows := state.rowsForUser(hired.ID)
	require.Len(t, rows, 3)
	hrCatalog := map[uuid.UUID]bool{}
	for _, tk := range state.tasks[hrStr] {
		hrCatalog[tk.ID] = true
	}
	for _, row := range rows {
		assert.True(t, hrCatalog[row.TaskID], "row should reference an HR catalog task")
		assert.False(t, row.Completed)
	}

	// Dissolve HR: the user survives with no department and no rows.
	require.NoError(t, deptSvc.Delete(ctx, hrStr))

	survivor := state.users[created.ID]
	require.NotNil(t, survivor)
	assert.Nil(t, survivor.DeptID)
	assert.Empty(t, state.rowsForUser(survivor.ID))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
