package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/repository"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

func (x *UseCase) PutPreference(ctx context.Context, input *model.PutPreferenceInput) (*model.Preference, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pref := &model.Preference{
		UserID:    input.UserID,
		Key:       input.Key,
		Value:     input.Value,
		UpdatedAt: logging.CtxTime(ctx),
	}

	if err := x.clients.Repository().PutPreference(ctx, pref); err != nil {
		return nil, err
	}

	return pref, nil
}

func (x *UseCase) GetPreference(ctx context.Context, userID types.UserID, key string) (*model.Preference, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "preference key is empty")
	}

	pref, err := x.clients.Repository().GetPreference(ctx, userID, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrNotFound, "preference not found",
				goerr.V("key", key))
		}
		return nil, err
	}

	return pref, nil
}

func (x *UseCase) ListPreferences(ctx context.Context, userID types.UserID) ([]*model.Preference, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.clients.Repository().ListPreferences(ctx, userID)
}
