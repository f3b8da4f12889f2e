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

func (x *UseCase) CreateNote(ctx context.Context, input *model.CreateNoteInput) (*model.Note, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx)
	note := &model.Note{
		ID:        types.NewNoteID(),
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := x.clients.Repository().CreateNote(ctx, note); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created note",
		slog.Any("userID", input.UserID),
		slog.Any("noteID", note.ID),
	)

	return note, nil
}

// getOwnedNote loads a note and enforces ownership. A note owned by another
// user yields Forbidden, never the note itself.
func (x *UseCase) getOwnedNote(ctx context.Context, userID types.UserID, noteID types.NoteID) (*model.Note, error) {
	note, err := x.clients.Repository().GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrNotFound, "note not found",
				goerr.V("noteID", noteID))
		}
		return nil, err
	}
	if note.UserID != userID {
		return nil, goerr.Wrap(types.ErrForbidden, "note belongs to another user",
			goerr.V("noteID", noteID),
			goerr.V("userID", userID),
		)
	}
	return note, nil
}

func (x *UseCase) GetNote(ctx context.Context, userID types.UserID, noteID types.NoteID) (*model.Note, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.getOwnedNote(ctx, userID, noteID)
}

func (x *UseCase) ListNotes(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.clients.Repository().ListNotes(ctx, userID)
}

func (x *UseCase) UpdateNote(ctx context.Context, input *model.UpdateNoteInput) (*model.Note, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	note, err := x.getOwnedNote(ctx, input.UserID, input.NoteID)
	if err != nil {
		return nil, err
	}

	note.Title = input.Title
	note.Content = input.Content
	note.Tags = input.Tags
	note.UpdatedAt = logging.CtxTime(ctx)

	if err := x.clients.Repository().UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (x *UseCase) DeleteNote(ctx context.Context, userID types.UserID, noteID types.NoteID) error {
	if err := x.requireRepository(); err != nil {
		return err
	}

	if _, err := x.getOwnedNote(ctx, userID, noteID); err != nil {
		return err
	}

	return x.clients.Repository().DeleteNote(ctx, noteID)
}

// BulkDeleteNotes deletes up to 100 notes in one call. Validation rejects the
// whole batch before any deletion; notes missing or owned by other users are
// skipped and not counted.
func (x *UseCase) BulkDeleteNotes(ctx context.Context, input *model.BulkDeleteNotesInput) (*model.BulkDeleteNotesResult, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &model.BulkDeleteNotesResult{}
	for _, noteID := range input.NoteIDs {
		if _, err := x.getOwnedNote(ctx, input.UserID, noteID); err != nil {
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrForbidden) {
				continue
			}
			return nil, err
		}
		if err := x.clients.Repository().DeleteNote(ctx, noteID); err != nil {
			return nil, err
		}
		result.Deleted++
	}

	logging.From(ctx).Info("bulk deleted notes",
		slog.Any("userID", input.UserID),
		slog.Int("requested", len(input.NoteIDs)),
		slog.Int("deleted", result.Deleted),
	)

	return result, nil
}
