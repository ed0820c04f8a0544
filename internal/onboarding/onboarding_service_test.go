package onboarding_test

import (
	"context"
	"testing"

	"go-onboard/internal/onboarding"
	onboardingerrors "go-onboard/internal/onboarding/errors"
	"go-onboard/internal/onboarding/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestOnboardingService_SetCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the flag and returns the updated row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := onboarding.NewService(repo)

		row := &onboarding.OnboardingTask{
			ID:        uuid.New(),
			UserID:    uuid.New(),
			TaskID:    uuid.New(),
			Completed: true,
		}

		gomock.InOrder(
			repo.EXPECT().SetCompleted(ctx, row.ID.String(), true).Return(nil),
			repo.EXPECT().FindByID(ctx, row.ID.String()).Return(row, nil),
		)

		resp, err := svc.SetCompleted(ctx, row.ID.String(), true)
		require.NoError(t, err)
		assert.True(t, resp.Completed)
		assert.Equal(t, row.UserID.String(), resp.UserID)
	})

	t.Run("unchecking a completed task is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := onboarding.NewService(repo)

		row := &onboarding.OnboardingTask{ID: uuid.New(), UserID: uuid.New(), TaskID: uuid.New()}

		repo.EXPECT().SetCompleted(ctx, row.ID.String(), false).Return(nil)
		repo.EXPECT().FindByID(ctx, row.ID.String()).Return(row, nil)

		resp, err := svc.SetCompleted(ctx, row.ID.String(), false)
		require.NoError(t, err)
		assert.False(t, resp.Completed)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		svc := onboarding.NewService(repo)

		id := uuid.NewString()
		repo.EXPECT().SetCompleted(ctx, id, true).Return(gorm.ErrRecordNotFound)

		_, err := svc.SetCompleted(ctx, id, true)
		assert.ErrorIs(t, err, onboardingerrors.ErrOnboardingTaskNotFound)
	})
}

func TestOnboardingService_CategoriesByUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := onboarding.NewService(repo)

	userID := uuid.NewString()
	repo.EXPECT().
		FindCategoriesByUser(ctx, userID).
		Return([]string{"Paperwork", "General", "First day", "Access", "Pre-hire"}, nil)

	categories, err := svc.CategoriesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pre-hire", "First day", "General", "Access", "Paperwork"}, categories)
}

func TestSortCategories(t *testing.T) {
	categories := []string{"Zebra", "First month", "Alpha", "First week", "Pre-hire"}
	onboarding.SortCategories(categories)
	assert.Equal(t, []string{"Pre-hire", "First week", "First month", "Alpha", "Zebra"}, categories)
}
