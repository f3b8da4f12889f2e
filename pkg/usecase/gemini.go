package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

// UploadGeminiFile pushes a user document to the Gemini Files API so later
// chat turns can reference it.
func (x *UseCase) UploadGeminiFile(ctx context.Context, input *model.UploadFileInput) (*model.UploadedFile, error) {
	if x.clients.GenAI() == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "Gemini integration is not configured")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	uploaded, err := x.clients.GenAI().UploadFile(ctx, input)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("uploaded file for Gemini",
		slog.Any("userID", input.UserID),
		slog.String("displayName", input.DisplayName),
		slog.String("fileName", uploaded.Name),
	)

	return uploaded, nil
}
