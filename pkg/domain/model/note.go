package model

import (
	"time"

	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// Note is a user-owned knowledge note
type Note struct {
	ID        types.NoteID `firestore:"id" json:"id"`
	UserID    types.UserID `firestore:"user_id" json:"user_id"`
	Title     string       `firestore:"title" json:"title"`
	Content   string       `firestore:"content" json:"content"`
	Tags      []string     `firestore:"tags" json:"tags,omitempty"`
	CreatedAt time.Time    `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time    `firestore:"updated_at" json:"updated_at"`
}

// Achievement records something the user accomplished
type Achievement struct {
	ID          types.AchievementID `firestore:"id" json:"id"`
	UserID      types.UserID        `firestore:"user_id" json:"user_id"`
	Title       string              `firestore:"title" json:"title"`
	Description string              `firestore:"description" json:"description,omitempty"`
	AchievedAt  time.Time           `firestore:"achieved_at" json:"achieved_at"`
	CreatedAt   time.Time           `firestore:"created_at" json:"created_at"`
}

// Activity is a single tracked event (note edited, repo staged, etc.)
type Activity struct {
	ID         types.ActivityID `firestore:"id" json:"id"`
	UserID     types.UserID     `firestore:"user_id" json:"user_id"`
	Kind       string           `firestore:"kind" json:"kind"`
	Detail     string           `firestore:"detail" json:"detail,omitempty"`
	OccurredAt time.Time        `firestore:"occurred_at" json:"occurred_at"`
}

// Conversation is a chat thread with an AI assistant
type Conversation struct {
	ID        types.ConversationID `firestore:"id" json:"id"`
	UserID    types.UserID         `firestore:"user_id" json:"user_id"`
	Title     string               `firestore:"title" json:"title"`
	CreatedAt time.Time            `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time            `firestore:"updated_at" json:"updated_at"`
}

// ChatMessage is a single turn in a conversation
type ChatMessage struct {
	ID        types.MessageID   `firestore:"id" json:"id"`
	Role      types.MessageRole `firestore:"role" json:"role"`
	Content   string            `firestore:"content" json:"content"`
	CreatedAt time.Time         `firestore:"created_at" json:"created_at"`
}

// Preference is a single user setting
type Preference struct {
	UserID    types.UserID `firestore:"user_id" json:"user_id"`
	Key       string       `firestore:"key" json:"key"`
	Value     string       `firestore:"value" json:"value"`
	UpdatedAt time.Time    `firestore:"updated_at" json:"updated_at"`
}
