package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/repository"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

func (x *UseCase) CreateAchievement(ctx context.Context, input *model.CreateAchievementInput) (*model.Achievement, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx)
	achievedAt := input.AchievedAt
	if achievedAt.IsZero() {
		achievedAt = now
	}

	achievement := &model.Achievement{
		ID:          types.NewAchievementID(),
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		AchievedAt:  achievedAt,
		CreatedAt:   now,
	}

	if err := x.clients.Repository().CreateAchievement(ctx, achievement); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created achievement",
		slog.Any("userID", input.UserID),
		slog.Any("achievementID", achievement.ID),
	)

	return achievement, nil
}

func (x *UseCase) getOwnedAchievement(ctx context.Context, userID types.UserID, id types.AchievementID) (*model.Achievement, error) {
	achievement, err := x.clients.Repository().GetAchievement(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrNotFound, "achievement not found",
				goerr.V("achievementID", id))
		}
		return nil, err
	}
	if achievement.UserID != userID {
		return nil, goerr.Wrap(types.ErrForbidden, "achievement belongs to another user",
			goerr.V("achievementID", id),
			goerr.V("userID", userID),
		)
	}
	return achievement, nil
}

func (x *UseCase) GetAchievement(ctx context.Context, userID types.UserID, id types.AchievementID) (*model.Achievement, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.getOwnedAchievement(ctx, userID, id)
}

func (x *UseCase) ListAchievements(ctx context.Context, userID types.UserID) ([]*model.Achievement, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.clients.Repository().ListAchievements(ctx, userID)
}

func (x *UseCase) DeleteAchievement(ctx context.Context, userID types.UserID, id types.AchievementID) error {
	if err := x.requireRepository(); err != nil {
		return err
	}

	if _, err := x.getOwnedAchievement(ctx, userID, id); err != nil {
		return err
	}

	return x.clients.Repository().DeleteAchievement(ctx, id)
}
