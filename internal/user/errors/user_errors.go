package usererrors

import (
	"go-onboard/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)
	ErrPhoneAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same phone number already exists",
		http.StatusConflict,
	)
	ErrUnknownSupervisedTask = apperror.New(
		apperror.CodeInvalidInput,
		"One or more supervised task ids do not reference an existing task",
		http.StatusBadRequest,
	)
	ErrDepartmentForUserNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced department does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
