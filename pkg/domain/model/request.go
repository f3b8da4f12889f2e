package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

const maxBulkDeleteIDs = 100

type CreateNoteInput struct {
	UserID  types.UserID `json:"-"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Tags    []string     `json:"tags,omitempty"`
}

func (x *CreateNoteInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "note title is empty")
	}
	return nil
}

type UpdateNoteInput struct {
	UserID  types.UserID `json:"-"`
	NoteID  types.NoteID `json:"-"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Tags    []string     `json:"tags,omitempty"`
}

func (x *UpdateNoteInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.NoteID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "note ID is empty")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "note title is empty")
	}
	return nil
}

type BulkDeleteNotesInput struct {
	UserID  types.UserID   `json:"-"`
	NoteIDs []types.NoteID `json:"note_ids"`
}

func (x *BulkDeleteNotesInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if len(x.NoteIDs) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "note ID list is empty")
	}
	if len(x.NoteIDs) > maxBulkDeleteIDs {
		return goerr.Wrap(types.ErrValidationFailed, "too many note IDs",
			goerr.V("count", len(x.NoteIDs)),
			goerr.V("max", maxBulkDeleteIDs),
		)
	}
	for _, id := range x.NoteIDs {
		if id == "" {
			return goerr.Wrap(types.ErrValidationFailed, "note ID is empty")
		}
	}
	return nil
}

// BulkDeleteNotesResult reports how many of the requested notes were actually
// owned by the caller and deleted.
type BulkDeleteNotesResult struct {
	Deleted int `json:"deleted"`
}

type CreateAchievementInput struct {
	UserID      types.UserID `json:"-"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	AchievedAt  time.Time    `json:"achieved_at"`
}

func (x *CreateAchievementInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "achievement title is empty")
	}
	return nil
}

type RecordActivityInput struct {
	UserID types.UserID `json:"-"`
	Kind   string       `json:"kind"`
	Detail string       `json:"detail,omitempty"`
}

func (x *RecordActivityInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Kind == "" {
		return goerr.Wrap(types.ErrValidationFailed, "activity kind is empty")
	}
	return nil
}

type CreateConversationInput struct {
	UserID types.UserID `json:"-"`
	Title  string       `json:"title"`
}

func (x *CreateConversationInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Title == "" {
		return goerr.Wrap(types.ErrValidationFailed, "conversation title is empty")
	}
	return nil
}

type AppendMessageInput struct {
	UserID         types.UserID         `json:"-"`
	ConversationID types.ConversationID `json:"-"`
	Role           types.MessageRole    `json:"role"`
	Content        string               `json:"content"`
}

func (x *AppendMessageInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.ConversationID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "conversation ID is empty")
	}
	if !x.Role.IsValid() {
		return goerr.Wrap(types.ErrValidationFailed, "invalid message role",
			goerr.V("role", x.Role))
	}
	if x.Content == "" {
		return goerr.Wrap(types.ErrValidationFailed, "message content is empty")
	}
	return nil
}

type PutPreferenceInput struct {
	UserID types.UserID `json:"-"`
	Key    string       `json:"-"`
	Value  string       `json:"value"`
}

func (x *PutPreferenceInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.Key == "" {
		return goerr.Wrap(types.ErrValidationFailed, "preference key is empty")
	}
	return nil
}
