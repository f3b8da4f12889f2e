package usecase

import (
	"context"

	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
)

// Read-only passthroughs to the GitHub client. Validation runs before any
// upstream call; the infra layer reshapes responses into local DTOs.

func (x *UseCase) ListCommits(ctx context.Context, q *model.ListCommitsQuery) ([]*model.CommitSummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().ListCommits(ctx, q)
}

func (x *UseCase) ListPullRequests(ctx context.Context, q *model.ListPullRequestsQuery) ([]*model.PullRequestSummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().ListPullRequests(ctx, q)
}

func (x *UseCase) GetPullRequest(ctx context.Context, q *model.GetPullRequestQuery) (*model.PullRequestSummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().GetPullRequest(ctx, q)
}

func (x *UseCase) ListPullRequestFiles(ctx context.Context, q *model.ListPullRequestFilesQuery) ([]*model.PullRequestFile, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().ListPullRequestFiles(ctx, q)
}

func (x *UseCase) ListCheckRuns(ctx context.Context, q *model.ListCheckRunsQuery) ([]*model.CheckRunSummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().ListCheckRuns(ctx, q)
}

func (x *UseCase) ListWorkflowRuns(ctx context.Context, q *model.ListWorkflowRunsQuery) ([]*model.WorkflowRunSummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().ListWorkflowRuns(ctx, q)
}

func (x *UseCase) GetWorkflowRun(ctx context.Context, q *model.GetWorkflowRunQuery) (*model.WorkflowRunSummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().GetWorkflowRun(ctx, q)
}

func (x *UseCase) ListUserRepositories(ctx context.Context, q *model.ListUserRepositoriesQuery) ([]*model.RepositorySummary, error) {
	if err := x.requireGitHub(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return x.clients.GitHub().ListUserRepositories(ctx, q)
}
