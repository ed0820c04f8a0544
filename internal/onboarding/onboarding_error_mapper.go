package onboarding

import (
	"errors"
	"strings"

	onboardingerrors "go-onboard/internal/onboarding/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboardingerrors.ErrOnboardingTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_onboarding_user_task" {
			return onboardingerrors.ErrDuplicateOnboardingTask
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_onboarding_user_task") {
		return onboardingerrors.ErrDuplicateOnboardingTask
	}

	return err
}
