package task

import (
	"errors"
	"strings"

	taskerrors "go-onboard/internal/task/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" {
			switch pgErr.ConstraintName {
			case "fk_tasks_department":
				return taskerrors.ErrDepartmentForTaskNotFound
			case "fk_tasks_supervisor":
				return taskerrors.ErrSupervisorForTaskNotFound
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "violates foreign key") && strings.Contains(errMsg, "fk_tasks_department") {
		return taskerrors.ErrDepartmentForTaskNotFound
	}
	if strings.Contains(errMsg, "violates foreign key") && strings.Contains(errMsg, "fk_tasks_supervisor") {
		return taskerrors.ErrSupervisorForTaskNotFound
	}

	return err
}
