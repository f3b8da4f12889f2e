package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	UserID         string
	NoteID         string
	AchievementID  string
	ActivityID     string
	ConversationID string
	MessageID      string
	RequestID      string

	RepoPath   string
	BranchName string
	CommitSHA  string

	GitHubToken  string
	GeminiAPIKey string

	GoogleProjectID string
	FirestoreDBID   string
	BQDatasetID     string
	BQTableID       string

	MessageRole string
)

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

func (x MessageRole) IsValid() bool {
	switch x {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

func NewRequestID() RequestID { return RequestID(uuid.NewString()) }

func NewNoteID() NoteID                 { return NoteID(uuid.NewString()) }
func NewAchievementID() AchievementID   { return AchievementID(uuid.NewString()) }
func NewActivityID() ActivityID         { return ActivityID(uuid.NewString()) }
func NewConversationID() ConversationID { return ConversationID(uuid.NewString()) }
func NewMessageID() MessageID           { return MessageID(uuid.NewString()) }

func (x GoogleProjectID) String() string { return string(x) }
func (x FirestoreDBID) String() string   { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GeminiAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GeminiAPIKey) String() string {
	return "***********"
}
