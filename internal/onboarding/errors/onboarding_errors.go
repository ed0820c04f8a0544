package onboardingerrors

import (
	"go-onboard/internal/shared/apperror"
	"net/http"
)

var (
	ErrOnboardingTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding task not found",
		http.StatusNotFound,
	)
	ErrDuplicateOnboardingTask = apperror.New(
		apperror.CodeConflict,
		"User already has an onboarding entry for this task",
		http.StatusConflict,
	)
)
