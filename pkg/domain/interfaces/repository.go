package interfaces

import (
	"context"

	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// BrainRepository is the durable store for all user-owned entities.
// Implementations must be safe for concurrent use.
type BrainRepository interface {
	// Note operations
	CreateNote(ctx context.Context, note *model.Note) error
	GetNote(ctx context.Context, id types.NoteID) (*model.Note, error)
	ListNotes(ctx context.Context, userID types.UserID) ([]*model.Note, error)
	UpdateNote(ctx context.Context, note *model.Note) error
	DeleteNote(ctx context.Context, id types.NoteID) error

	// Achievement operations
	CreateAchievement(ctx context.Context, achievement *model.Achievement) error
	GetAchievement(ctx context.Context, id types.AchievementID) (*model.Achievement, error)
	ListAchievements(ctx context.Context, userID types.UserID) ([]*model.Achievement, error)
	DeleteAchievement(ctx context.Context, id types.AchievementID) error

	// Activity operations
	RecordActivity(ctx context.Context, activity *model.Activity) error
	ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error)

	// Conversation operations
	CreateConversation(ctx context.Context, conv *model.Conversation) error
	GetConversation(ctx context.Context, id types.ConversationID) (*model.Conversation, error)
	ListConversations(ctx context.Context, userID types.UserID) ([]*model.Conversation, error)
	DeleteConversation(ctx context.Context, id types.ConversationID) error
	AppendMessage(ctx context.Context, convID types.ConversationID, msg *model.ChatMessage) error
	ListMessages(ctx context.Context, convID types.ConversationID) ([]*model.ChatMessage, error)

	// Preference operations
	PutPreference(ctx context.Context, pref *model.Preference) error
	GetPreference(ctx context.Context, userID types.UserID, key string) (*model.Preference, error)
	ListPreferences(ctx context.Context, userID types.UserID) ([]*model.Preference, error)
}
