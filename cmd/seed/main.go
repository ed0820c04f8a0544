package main

import (
	"context"
	"errors"
	"os"
	"strconv"

	"go-onboard/internal/app"
	"go-onboard/internal/department"
	"go-onboard/internal/onboarding"
	"go-onboard/internal/shared/apperror"
	"go-onboard/internal/shared/connection"
	"go-onboard/internal/task"
	"go-onboard/internal/user"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type deptSeed struct {
	Name  string
	Tasks []string
}

var departmentsData = []deptSeed{
	{"Engineering", []string{
		"Setup Development Environment",
		"Review Code Style Guidelines",
		"Gain Access to GitHub Repository",
		"Complete Security Compliance Training",
		"Read System Architecture Docs",
	}},
	{"HR", []string{
		"Review Employee Handbook",
		"Complete Benefits Enrollment",
		"Submit Payroll Information",
		"Harassment Prevention Training",
		"Meet with Department Head",
	}},
	{"Marketing", []string{
		"Review Brand Guidelines",
		"Access Social Media Accounts",
		"Analyze Competitor Landscape",
		"Setup Analytics Tools",
		"Read Content Strategy",
	}},
	{"Sales", []string{
		"CRM Software Training",
		"Review Sales Scripts",
		"Shadow a Senior Sales Rep",
		"Product Demo Walkthrough",
		"Review Pricing Model",
	}},
	{"IT", []string{
		"Setup Company Email",
		"Configure VPN Access",
		"Hardware Provisioning",
		"Security Policy Acknowledgement",
		"Password Manager Setup",
	}},
}

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := run(logger.Named("seed")); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	ctx := context.Background()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	if err := app.Migrate(gormDB); err != nil {
		return err
	}

	departmentRepo := department.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)

	departmentService := department.NewService(gormDB, departmentRepo, userRepo, taskRepo, onboardingRepo, nil)
	taskService := task.NewService(gormDB, taskRepo, onboardingRepo, nil)
	userService := user.NewService(gormDB, userRepo, taskRepo, onboardingRepo)

	password := os.Getenv("SEED_DEFAULT_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	deptIDs := make(map[string]string)
	for _, dept := range departmentsData {
		resp, err := departmentService.Create(ctx, department.CreateDepartmentRequest{Name: dept.Name})
		if err != nil {
			if !isConflict(err) {
				return err
			}
			existing, err := findDepartmentByName(ctx, gormDB, dept.Name)
			if err != nil {
				return err
			}
			deptIDs[dept.Name] = existing
			logger.Info("department already present", zap.String("name", dept.Name))
			continue
		}
		deptIDs[dept.Name] = resp.ID

		for _, desc := range dept.Tasks {
			if _, err := taskService.Create(ctx, task.CreateTaskRequest{
				Desc:   desc,
				DeptID: resp.ID,
			}); err != nil {
				return err
			}
		}
		logger.Info("seeded department", zap.String("name", dept.Name), zap.Int("tasks", len(dept.Tasks)))
	}

	seedUser := func(name, email string, role user.Role, deptID *string) error {
		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			logger.Info("user already present", zap.String("email", email))
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		_, err := userService.Create(ctx, user.CreateUserRequest{
			Name:     name,
			Email:    email,
			Role:     role,
			DeptID:   deptID,
			Password: password,
		})
		if err != nil {
			return err
		}
		logger.Info("seeded user", zap.String("email", email), zap.String("role", string(role)))
		return nil
	}

	admins := []struct{ Name, Email string }{
		{"Tushar Wani", "reachtusharwani@gmail.com"},
		{"Admin User Two", "admin2@example.com"},
	}
	for _, a := range admins {
		if err := seedUser(a.Name, a.Email, user.RoleAdmin, nil); err != nil {
			return err
		}
	}

	supervisors := []struct{ Name, Email string }{
		{"Supervisor One", "supervisor1@example.com"},
		{"Supervisor Two", "supervisor2@example.com"},
	}
	for _, s := range supervisors {
		if err := seedUser(s.Name, s.Email, user.RoleSupervisor, nil); err != nil {
			return err
		}
	}

	employees := []struct{ Name, Email string }{
		{"Employee One", "employee1@example.com"},
		{"Employee Two", "employee2@example.com"},
		{"Employee Three", "employee3@example.com"},
	}
	for _, e := range employees {
		if err := seedUser(e.Name, e.Email, user.RoleEmployee, nil); err != nil {
			return err
		}
	}

	// Two onboarding users per department; going through the service
	// provisions their task rows.
	counter := 1
	for _, dept := range departmentsData {
		deptID := deptIDs[dept.Name]
		for i := 0; i < 2; i++ {
			email := fmtEmail(counter)
			name := fmtName(counter)
			if err := seedUser(name, email, user.RoleOnboarding, &deptID); err != nil {
				return err
			}
			counter++
		}
	}

	logger.Info("seeding completed")
	return nil
}

func findDepartmentByName(ctx context.Context, db *gorm.DB, name string) (string, error) {
	var d department.Department
	if err := db.WithContext(ctx).First(&d, "name = ?", name).Error; err != nil {
		return "", err
	}
	return d.ID.String(), nil
}

func isConflict(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == apperror.CodeConflict
}

func fmtEmail(n int) string {
	return "onboarding" + strconv.Itoa(n) + "@example.com"
}

func fmtName(n int) string {
	return "Onboarding User " + strconv.Itoa(n)
}
