package usecase

import (
	"context"
	"log/slog"

	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/errutil"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

// RecordActivity stores the event and forwards it to the analytics sink when
// one is configured. Sink failures are logged and never fail the request.
func (x *UseCase) RecordActivity(ctx context.Context, input *model.RecordActivityInput) (*model.Activity, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		ID:         types.NewActivityID(),
		UserID:     input.UserID,
		Kind:       input.Kind,
		Detail:     input.Detail,
		OccurredAt: logging.CtxTime(ctx),
	}

	if err := x.clients.Repository().RecordActivity(ctx, activity); err != nil {
		return nil, err
	}

	if sink := x.clients.ActivitySink(); sink != nil {
		if err := sink.Insert(ctx, activity); err != nil {
			errutil.HandleError(ctx, "failed to export activity", err)
		}
	}

	logging.From(ctx).Debug("recorded activity",
		slog.Any("userID", input.UserID),
		slog.String("kind", input.Kind),
	)

	return activity, nil
}

func (x *UseCase) ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.clients.Repository().ListActivities(ctx, userID, limit)
}
