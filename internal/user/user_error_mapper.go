package user

import (
	"errors"
	"strings"

	usererrors "go-onboard/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_users_email":
				return usererrors.ErrEmailAlreadyExists
			case "uq_users_phone":
				return usererrors.ErrPhoneAlreadyExists
			}
		case "23503":
			if pgErr.ConstraintName == "fk_users_department" {
				return usererrors.ErrDepartmentForUserNotFound
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_email") {
		return usererrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_users_phone") {
		return usererrors.ErrPhoneAlreadyExists
	}

	return err
}
