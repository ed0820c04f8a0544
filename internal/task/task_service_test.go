package task_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-onboard/internal/task"
	taskerrors "go-onboard/internal/task/errors"

	onboardingMock "go-onboard/internal/onboarding/mock"
	taskMock "go-onboard/internal/task/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db             *sql.DB
	sqlMock        sqlmock.Sqlmock
	redisMock      redismock.ClientMock
	service        task.Service
	repo           *taskMock.MockRepository
	onboardingRepo *onboardingMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := taskMock.NewMockRepository(ctrl)
	onboardingRepo := onboardingMock.NewMockRepository(ctrl)

	svc := task.NewService(gormDB, repo, onboardingRepo, rdb)

	return &serviceDeps{
		db:             db,
		sqlMock:        sqlMock,
		redisMock:      redisMock,
		service:        svc,
		repo:           repo,
		onboardingRepo: onboardingRepo,
	}
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults come from the entity and the options cache is dropped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, tk *task.Task) error {
				assert.Equal(t, "Setup laptop", tk.Desc)
				assert.Nil(t, tk.SupervisorID)
				return nil
			})
		deps.redisMock.ExpectDel(task.OptionsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, task.CreateTaskRequest{
			Desc:   "Setup laptop",
			DeptID: deptID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Setup laptop", resp.Desc)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("unknown department maps to invalid input", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_tasks_department"})

		_, err := deps.service.Create(ctx, task.CreateTaskRequest{
			Desc:   "Orphan",
			DeptID: uuid.NewString(),
		})
		assert.ErrorIs(t, err, taskerrors.ErrDepartmentForTaskNotFound)
	})
}

func TestTaskService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []task.TaskOptionResponse{{ID: uuid.NewString(), Label: "[HR] Review handbook"}}
		payload, err := json.Marshal(cached)
		require.NoError(t, err)

		deps.redisMock.ExpectGet(task.OptionsCacheKey).SetVal(string(payload))

		resp, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "[HR] Review handbook", resp[0].Label)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss builds labeled options from the join rows", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		row := task.TaskOptionRow{
			ID:       uuid.NewString(),
			Desc:     "Configure VPN Access",
			DeptID:   uuid.NewString(),
			DeptName: "IT",
		}

		deps.redisMock.ExpectGet(task.OptionsCacheKey).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return([]task.TaskOptionRow{row}, nil)
		deps.redisMock.Regexp().ExpectSet(task.OptionsCacheKey, `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "[IT] Configure VPN Access", resp[0].Label)
		assert.Equal(t, row.ID, resp[0].Value)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("onboarding rows go before the task in the same transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(deps.onboardingRepo)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		gomock.InOrder(
			deps.onboardingRepo.EXPECT().DeleteByTask(ctx, id).Return(nil),
			deps.repo.EXPECT().Delete(ctx, id).Return(nil),
		)

		deps.redisMock.ExpectDel(task.OptionsCacheKey).SetVal(1)

		require.NoError(t, deps.service.Delete(ctx, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing task rolls back and reports not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(deps.onboardingRepo)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.onboardingRepo.EXPECT().DeleteByTask(ctx, id).Return(nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing task maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id, task.UpdateTaskRequest{Desc: "x", Category: "General"})
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}
