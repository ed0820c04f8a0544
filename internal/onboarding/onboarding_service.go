package onboarding

import (
	"context"
	"sort"

	"go-onboard/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Categories carry a conventional onboarding timeline; anything outside it
// sorts alphabetically after the known phases. Category values themselves
// stay free-form.
var categoryPriority = []string{
	"Pre-hire",
	"First day",
	"First week",
	"First month",
	"General",
}

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	SetCompleted(ctx context.Context, id string, completed bool) (OnboardingTaskResponse, error)
	ListByUser(ctx context.Context, userID string) ([]OnboardingTaskItemResponse, error)
	CategoriesByUser(ctx context.Context, userID string) ([]string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) SetCompleted(ctx context.Context, id string, completed bool) (OnboardingTaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("set onboarding task completion requested",
		zap.String("request_id", rid),
		zap.String("onboarding_task_id", id),
		zap.Bool("completed", completed),
	)

	if err := s.repo.SetCompleted(ctx, id, completed); err != nil {
		s.logger.Error("set onboarding task completion failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return OnboardingTaskResponse{}, mapRepositoryError(err)
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OnboardingTaskResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("onboarding task completion updated",
		zap.String("onboarding_task_id", id),
		zap.Bool("completed", completed),
	)

	return OnboardingTaskResponse{
		ID:        row.ID.String(),
		UserID:    row.UserID.String(),
		TaskID:    row.TaskID.String(),
		Completed: row.Completed,
	}, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]OnboardingTaskItemResponse, error) {
	s.logger.Debug("list onboarding tasks requested", zap.String("user_id", userID))

	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list onboarding tasks failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]OnboardingTaskItemResponse, len(rows))
	for i, row := range rows {
		resp[i] = OnboardingTaskItemResponse{
			ID:        row.ID,
			TaskID:    row.TaskID,
			Desc:      row.Desc,
			Category:  row.Category,
			Completed: row.Completed,
		}
	}
	return resp, nil
}

func (s *service) CategoriesByUser(ctx context.Context, userID string) ([]string, error) {
	categories, err := s.repo.FindCategoriesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list user task categories failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	SortCategories(categories)
	return categories, nil
}

// SortCategories orders by the onboarding timeline first, then
// alphabetically for department-defined labels.
func SortCategories(categories []string) {
	rank := func(c string) int {
		for i, p := range categoryPriority {
			if p == c {
				return i
			}
		}
		return len(categoryPriority)
	}

	sort.Slice(categories, func(i, j int) bool {
		ri, rj := rank(categories[i]), rank(categories[j])
		if ri != rj {
			return ri < rj
		}
		return categories[i] < categories[j]
	})
}
