package department_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-onboard/internal/department"
	departmenterrors "go-onboard/internal/department/errors"

	departmentMock "go-onboard/internal/department/mock"
	onboardingMock "go-onboard/internal/onboarding/mock"
	taskMock "go-onboard/internal/task/mock"
	userMock "go-onboard/internal/user/mock"

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
	service        department.Service
	repo           *departmentMock.MockRepository
	userRepo       *userMock.MockRepository
	taskRepo       *taskMock.MockRepository
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
	repo := departmentMock.NewMockRepository(ctrl)
	userRepo := userMock.NewMockRepository(ctrl)
	taskRepo := taskMock.NewMockRepository(ctrl)
	onboardingRepo := onboardingMock.NewMockRepository(ctrl)

	svc := department.NewService(gormDB, repo, userRepo, taskRepo, onboardingRepo, rdb)

	return &serviceDeps{
		db:             db,
		sqlMock:        sqlMock,
		redisMock:      redisMock,
		service:        svc,
		repo:           repo,
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		onboardingRepo: onboardingRepo,
	}
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade runs in dependency order inside one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()
		taskIDs := []string{uuid.NewString(), uuid.NewString()}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.userRepo.EXPECT().WithTx(gomock.Any()).Return(deps.userRepo)
		deps.taskRepo.EXPECT().WithTx(gomock.Any()).Return(deps.taskRepo)
		deps.onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(deps.onboardingRepo)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		gomock.InOrder(
			deps.userRepo.EXPECT().UnassignDepartment(ctx, deptID).Return(nil),
			deps.taskRepo.EXPECT().FindIDsByDepartment(ctx, deptID).Return(taskIDs, nil),
			deps.onboardingRepo.EXPECT().DeleteByTaskIDs(ctx, taskIDs).Return(nil),
			deps.taskRepo.EXPECT().DeleteByDepartment(ctx, deptID).Return(nil),
			deps.repo.EXPECT().Delete(ctx, deptID).Return(nil),
		)

		deps.redisMock.ExpectDel("departments:options", "tasks:options").SetVal(2)

		require.NoError(t, deps.service.Delete(ctx, deptID))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("empty catalog skips onboarding and task cleanup", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.userRepo.EXPECT().WithTx(gomock.Any()).Return(deps.userRepo)
		deps.taskRepo.EXPECT().WithTx(gomock.Any()).Return(deps.taskRepo)
		deps.onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(deps.onboardingRepo)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.userRepo.EXPECT().UnassignDepartment(ctx, deptID).Return(nil)
		deps.taskRepo.EXPECT().FindIDsByDepartment(ctx, deptID).Return(nil, nil)
		deps.repo.EXPECT().Delete(ctx, deptID).Return(nil)

		deps.redisMock.ExpectDel("departments:options", "tasks:options").SetVal(2)

		require.NoError(t, deps.service.Delete(ctx, deptID))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("failure mid-cascade rolls the whole thing back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()
		taskIDs := []string{uuid.NewString()}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.userRepo.EXPECT().WithTx(gomock.Any()).Return(deps.userRepo)
		deps.taskRepo.EXPECT().WithTx(gomock.Any()).Return(deps.taskRepo)
		deps.onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(deps.onboardingRepo)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.userRepo.EXPECT().UnassignDepartment(ctx, deptID).Return(nil)
		deps.taskRepo.EXPECT().FindIDsByDepartment(ctx, deptID).Return(taskIDs, nil)
		deps.onboardingRepo.EXPECT().DeleteByTaskIDs(ctx, taskIDs).Return(assert.AnError)

		err := deps.service.Delete(ctx, deptID)
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing department maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.userRepo.EXPECT().WithTx(gomock.Any()).Return(deps.userRepo)
		deps.taskRepo.EXPECT().WithTx(gomock.Any()).Return(deps.taskRepo)
		deps.onboardingRepo.EXPECT().WithTx(gomock.Any()).Return(deps.onboardingRepo)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		deps.userRepo.EXPECT().UnassignDepartment(ctx, deptID).Return(nil)
		deps.taskRepo.EXPECT().FindIDsByDepartment(ctx, deptID).Return(nil, nil)
		deps.repo.EXPECT().Delete(ctx, deptID).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, deptID)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_name"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameAlreadyExists)
	})

	t.Run("success invalidates the options caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "Sales", d.Name)
				return nil
			})
		deps.redisMock.ExpectDel("departments:options", "tasks:options").SetVal(2)

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Sales"})
		require.NoError(t, err)
		assert.Equal(t, "Sales", resp.Name)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from the repository and fills the cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		d := department.Department{ID: uuid.New(), Name: "HR"}

		deps.redisMock.ExpectGet("departments:options").RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return([]department.Department{d}, nil)
		deps.redisMock.Regexp().ExpectSet("departments:options", `.*`, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "HR", resp[0].Label)
		assert.Equal(t, d.ID.String(), resp[0].Value)
	})
}
