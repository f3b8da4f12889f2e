package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra"
	"github.com/secondbrain-app/secondbrain/pkg/repository/memory"
	"github.com/secondbrain-app/secondbrain/pkg/usecase"
)

func newNoteUseCase() *usecase.UseCase {
	clients := infra.New(infra.WithRepository(memory.New()))
	return usecase.New(clients)
}

func TestNoteCRUD(t *testing.T) {
	ctx := context.Background()
	uc := newNoteUseCase()

	note, err := uc.CreateNote(ctx, &model.CreateNoteInput{
		UserID:  "alice",
		Title:   "meeting notes",
		Content: "discuss roadmap",
		Tags:    []string{"work"},
	})
	gt.NoError(t, err)
	gt.V(t, note.UserID).Equal(types.UserID("alice"))
	gt.B(t, note.ID != "").True()

	retrieved, err := uc.GetNote(ctx, "alice", note.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Title).Equal("meeting notes")

	updated, err := uc.UpdateNote(ctx, &model.UpdateNoteInput{
		UserID:  "alice",
		NoteID:  note.ID,
		Title:   "meeting notes (final)",
		Content: "roadmap agreed",
	})
	gt.NoError(t, err)
	gt.V(t, updated.Title).Equal("meeting notes (final)")

	notes, err := uc.ListNotes(ctx, "alice")
	gt.NoError(t, err)
	gt.A(t, notes).Length(1)

	gt.NoError(t, uc.DeleteNote(ctx, "alice", note.ID))

	_, err = uc.GetNote(ctx, "alice", note.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrNotFound)).True()
}

func TestNoteOwnership(t *testing.T) {
	ctx := context.Background()
	uc := newNoteUseCase()

	note, err := uc.CreateNote(ctx, &model.CreateNoteInput{
		UserID: "alice",
		Title:  "private",
	})
	gt.NoError(t, err)

	// Another user cannot read, update or delete the note
	_, err = uc.GetNote(ctx, "mallory", note.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrForbidden)).True()

	_, err = uc.UpdateNote(ctx, &model.UpdateNoteInput{
		UserID: "mallory",
		NoteID: note.ID,
		Title:  "defaced",
	})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrForbidden)).True()

	err = uc.DeleteNote(ctx, "mallory", note.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrForbidden)).True()

	// The note is intact
	retrieved, err := uc.GetNote(ctx, "alice", note.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Title).Equal("private")
}

func TestCreateNoteValidation(t *testing.T) {
	ctx := context.Background()
	uc := newNoteUseCase()

	_, err := uc.CreateNote(ctx, &model.CreateNoteInput{UserID: "alice"})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()

	_, err = uc.CreateNote(ctx, &model.CreateNoteInput{Title: "no user"})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
}

func TestBulkDeleteNotes(t *testing.T) {
	ctx := context.Background()
	uc := newNoteUseCase()

	var ids []types.NoteID
	for i := 0; i < 5; i++ {
		note, err := uc.CreateNote(ctx, &model.CreateNoteInput{
			UserID: "alice",
			Title:  fmt.Sprintf("note-%d", i),
		})
		gt.NoError(t, err)
		ids = append(ids, note.ID)
	}

	// A note owned by bob is skipped, not deleted
	bobNote, err := uc.CreateNote(ctx, &model.CreateNoteInput{
		UserID: "bob",
		Title:  "bob's note",
	})
	gt.NoError(t, err)

	result, err := uc.BulkDeleteNotes(ctx, &model.BulkDeleteNotesInput{
		UserID:  "alice",
		NoteIDs: append(append([]types.NoteID{}, ids...), bobNote.ID, "missing-id"),
	})
	gt.NoError(t, err)
	gt.V(t, result.Deleted).Equal(5)

	remaining, err := uc.ListNotes(ctx, "alice")
	gt.NoError(t, err)
	gt.A(t, remaining).Length(0)

	// Bob's note survived
	retrieved, err := uc.GetNote(ctx, "bob", bobNote.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Title).Equal("bob's note")
}

func TestBulkDeleteNotesValidation(t *testing.T) {
	ctx := context.Background()
	uc := newNoteUseCase()

	keeper, err := uc.CreateNote(ctx, &model.CreateNoteInput{
		UserID: "alice",
		Title:  "keeper",
	})
	gt.NoError(t, err)

	// 101 IDs are rejected before any deletion
	ids := make([]types.NoteID, 101)
	ids[0] = keeper.ID
	for i := 1; i < len(ids); i++ {
		ids[i] = types.NoteID(fmt.Sprintf("id-%d", i))
	}

	_, err = uc.BulkDeleteNotes(ctx, &model.BulkDeleteNotesInput{
		UserID:  "alice",
		NoteIDs: ids,
	})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()

	// Nothing was deleted
	_, err = uc.GetNote(ctx, "alice", keeper.ID)
	gt.NoError(t, err)

	// Empty and blank IDs are also rejected
	_, err = uc.BulkDeleteNotes(ctx, &model.BulkDeleteNotesInput{UserID: "alice"})
	gt.Error(t, err)

	_, err = uc.BulkDeleteNotes(ctx, &model.BulkDeleteNotesInput{
		UserID:  "alice",
		NoteIDs: []types.NoteID{""},
	})
	gt.Error(t, err)
}

func TestNoteWithoutRepository(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New())

	_, err := uc.CreateNote(ctx, &model.CreateNoteInput{
		UserID: "alice",
		Title:  "no store",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("entity repository is required")
}
