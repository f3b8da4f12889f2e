package interfaces

import (
	"context"

	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// GitClient wraps local working tree operations. All paths are already
// resolved and authorized by the caller.
type GitClient interface {
	Status(ctx context.Context, dir string) (*model.GitStatus, error)
	StageFiles(ctx context.Context, dir string, files []string) error
	UnstageFiles(ctx context.Context, dir string, files []string) error
	DeleteBranch(ctx context.Context, dir string, branch types.BranchName, force bool) error
	IsRepository(ctx context.Context, dir string) (bool, error)
}

// GitHub wraps read-only queries against the GitHub REST API.
type GitHub interface {
	ListCommits(ctx context.Context, q *model.ListCommitsQuery) ([]*model.CommitSummary, error)
	ListPullRequests(ctx context.Context, q *model.ListPullRequestsQuery) ([]*model.PullRequestSummary, error)
	GetPullRequest(ctx context.Context, q *model.GetPullRequestQuery) (*model.PullRequestSummary, error)
	ListPullRequestFiles(ctx context.Context, q *model.ListPullRequestFilesQuery) ([]*model.PullRequestFile, error)
	ListCheckRuns(ctx context.Context, q *model.ListCheckRunsQuery) ([]*model.CheckRunSummary, error)
	ListWorkflowRuns(ctx context.Context, q *model.ListWorkflowRunsQuery) ([]*model.WorkflowRunSummary, error)
	GetWorkflowRun(ctx context.Context, q *model.GetWorkflowRunQuery) (*model.WorkflowRunSummary, error)
	ListUserRepositories(ctx context.Context, q *model.ListUserRepositoriesQuery) ([]*model.RepositorySummary, error)
}

// GenAI wraps the Gemini Files API.
type GenAI interface {
	UploadFile(ctx context.Context, input *model.UploadFileInput) (*model.UploadedFile, error)
}

// ActivitySink receives activity records for analytics export. Best effort:
// sink failures must not fail the originating request.
type ActivitySink interface {
	Insert(ctx context.Context, activity *model.Activity) error
}
