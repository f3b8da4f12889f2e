package interfaces

import (
	"context"

	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

type UseCase interface {
	// Notes
	CreateNote(ctx context.Context, input *model.CreateNoteInput) (*model.Note, error)
	GetNote(ctx context.Context, userID types.UserID, noteID types.NoteID) (*model.Note, error)
	ListNotes(ctx context.Context, userID types.UserID) ([]*model.Note, error)
	UpdateNote(ctx context.Context, input *model.UpdateNoteInput) (*model.Note, error)
	DeleteNote(ctx context.Context, userID types.UserID, noteID types.NoteID) error
	BulkDeleteNotes(ctx context.Context, input *model.BulkDeleteNotesInput) (*model.BulkDeleteNotesResult, error)

	// Achievements
	CreateAchievement(ctx context.Context, input *model.CreateAchievementInput) (*model.Achievement, error)
	GetAchievement(ctx context.Context, userID types.UserID, id types.AchievementID) (*model.Achievement, error)
	ListAchievements(ctx context.Context, userID types.UserID) ([]*model.Achievement, error)
	DeleteAchievement(ctx context.Context, userID types.UserID, id types.AchievementID) error

	// Activities
	RecordActivity(ctx context.Context, input *model.RecordActivityInput) (*model.Activity, error)
	ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error)

	// Chat
	CreateConversation(ctx context.Context, input *model.CreateConversationInput) (*model.Conversation, error)
	GetConversation(ctx context.Context, userID types.UserID, id types.ConversationID) (*model.Conversation, []*model.ChatMessage, error)
	ListConversations(ctx context.Context, userID types.UserID) ([]*model.Conversation, error)
	DeleteConversation(ctx context.Context, userID types.UserID, id types.ConversationID) error
	AppendMessage(ctx context.Context, input *model.AppendMessageInput) (*model.ChatMessage, error)

	// Preferences
	PutPreference(ctx context.Context, input *model.PutPreferenceInput) (*model.Preference, error)
	GetPreference(ctx context.Context, userID types.UserID, key string) (*model.Preference, error)
	ListPreferences(ctx context.Context, userID types.UserID) ([]*model.Preference, error)

	// Git
	GetGitStatus(ctx context.Context, req *model.RepoRequest) (*model.GitStatus, error)
	StageFiles(ctx context.Context, input *model.StageFilesInput) error
	UnstageFiles(ctx context.Context, input *model.StageFilesInput) error
	DeleteBranch(ctx context.Context, input *model.DeleteBranchInput) error
	ValidateRepository(ctx context.Context, req *model.RepoRequest) (bool, error)

	// GitHub
	ListCommits(ctx context.Context, q *model.ListCommitsQuery) ([]*model.CommitSummary, error)
	ListPullRequests(ctx context.Context, q *model.ListPullRequestsQuery) ([]*model.PullRequestSummary, error)
	GetPullRequest(ctx context.Context, q *model.GetPullRequestQuery) (*model.PullRequestSummary, error)
	ListPullRequestFiles(ctx context.Context, q *model.ListPullRequestFilesQuery) ([]*model.PullRequestFile, error)
	ListCheckRuns(ctx context.Context, q *model.ListCheckRunsQuery) ([]*model.CheckRunSummary, error)
	ListWorkflowRuns(ctx context.Context, q *model.ListWorkflowRunsQuery) ([]*model.WorkflowRunSummary, error)
	GetWorkflowRun(ctx context.Context, q *model.GetWorkflowRunQuery) (*model.WorkflowRunSummary, error)
	ListUserRepositories(ctx context.Context, q *model.ListUserRepositoriesQuery) ([]*model.RepositorySummary, error)

	// Integrations
	UploadGeminiFile(ctx context.Context, input *model.UploadFileInput) (*model.UploadedFile, error)
}
