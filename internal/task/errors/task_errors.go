package taskerrors

import (
	"go-onboard/internal/shared/apperror"
	"net/http"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrDepartmentForTaskNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced department does not exist",
		http.StatusBadRequest,
	)
	ErrSupervisorForTaskNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced supervisor does not exist",
		http.StatusBadRequest,
	)
)
