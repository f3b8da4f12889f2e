package githubapi

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

// Client wraps the GitHub REST API with token authentication. Query results
// are reshaped into local DTOs so upstream schema changes stay in this
// package.
type Client struct {
	gh           *github.Client
	defaultOwner string
	defaultRepo  string
}

var _ interfaces.GitHub = (*Client)(nil)

func New(ctx context.Context, token types.GitHubToken, defaultOwner, defaultRepo string) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	return &Client{
		gh:           github.NewTokenClient(ctx, string(token)),
		defaultOwner: defaultOwner,
		defaultRepo:  defaultRepo,
	}, nil
}

// NewWithClient builds a Client on a prebuilt go-github client. Used by tests
// to point at a stub API server.
func NewWithClient(gh *github.Client, defaultOwner, defaultRepo string) *Client {
	return &Client{
		gh:           gh,
		defaultOwner: defaultOwner,
		defaultRepo:  defaultRepo,
	}
}

func (x *Client) resolveRepo(ref model.RepoRef) (string, string, error) {
	owner, repo := ref.Owner, ref.Repo
	if owner == "" {
		owner = x.defaultOwner
	}
	if repo == "" {
		repo = x.defaultRepo
	}
	if owner == "" || repo == "" {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "owner and repo are required (no defaults configured)",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return owner, repo, nil
}

func (x *Client) ListCommits(ctx context.Context, q *model.ListCommitsQuery) ([]*model.CommitSummary, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}
	page := q.Page.Normalize()

	commits, _, err := x.gh.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		ListOptions: github.ListOptions{Page: page.Page, PerPage: page.PerPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	result := make([]*model.CommitSummary, 0, len(commits))
	for _, c := range commits {
		result = append(result, &model.CommitSummary{
			SHA:       types.CommitSHA(c.GetSHA()),
			Message:   c.GetCommit().GetMessage(),
			Author:    c.GetAuthor().GetLogin(),
			Committer: c.GetCommitter().GetLogin(),
			Date:      c.GetCommit().GetAuthor().GetDate().Time,
			HTMLURL:   c.GetHTMLURL(),
		})
	}

	logging.From(ctx).Debug("listed commits",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(result)),
	)

	return result, nil
}

func (x *Client) ListPullRequests(ctx context.Context, q *model.ListPullRequestsQuery) ([]*model.PullRequestSummary, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}
	page := q.Page.Normalize()

	state := q.State
	if state == "" {
		state = "open"
	}

	prs, _, err := x.gh.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State:       state,
		ListOptions: github.ListOptions{Page: page.Page, PerPage: page.PerPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("state", state),
		)
	}

	result := make([]*model.PullRequestSummary, 0, len(prs))
	for _, pr := range prs {
		result = append(result, toPullRequestSummary(pr))
	}

	return result, nil
}

func (x *Client) GetPullRequest(ctx context.Context, q *model.GetPullRequestQuery) (*model.PullRequestSummary, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}

	pr, _, err := x.gh.PullRequests.Get(ctx, owner, repo, q.Number)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get pull request",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", q.Number),
		)
	}

	return toPullRequestSummary(pr), nil
}

func (x *Client) ListPullRequestFiles(ctx context.Context, q *model.ListPullRequestFilesQuery) ([]*model.PullRequestFile, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}
	page := q.Page.Normalize()

	files, _, err := x.gh.PullRequests.ListFiles(ctx, owner, repo, q.Number, &github.ListOptions{
		Page:    page.Page,
		PerPage: page.PerPage,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull request files",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", q.Number),
		)
	}

	result := make([]*model.PullRequestFile, 0, len(files))
	for _, f := range files {
		result = append(result, &model.PullRequestFile{
			Filename:  f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
			Changes:   f.GetChanges(),
		})
	}

	return result, nil
}

func (x *Client) ListCheckRuns(ctx context.Context, q *model.ListCheckRunsQuery) ([]*model.CheckRunSummary, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}
	page := q.Page.Normalize()

	runs, _, err := x.gh.Checks.ListCheckRunsForRef(ctx, owner, repo, string(q.SHA), &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{Page: page.Page, PerPage: page.PerPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list check runs",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("sha", q.SHA),
		)
	}

	result := make([]*model.CheckRunSummary, 0, len(runs.CheckRuns))
	for _, run := range runs.CheckRuns {
		result = append(result, &model.CheckRunSummary{
			ID:          run.GetID(),
			Name:        run.GetName(),
			Status:      run.GetStatus(),
			Conclusion:  run.GetConclusion(),
			StartedAt:   run.GetStartedAt().Time,
			CompletedAt: run.GetCompletedAt().Time,
			HTMLURL:     run.GetHTMLURL(),
		})
	}

	return result, nil
}

func (x *Client) ListWorkflowRuns(ctx context.Context, q *model.ListWorkflowRunsQuery) ([]*model.WorkflowRunSummary, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}
	page := q.Page.Normalize()

	runs, _, err := x.gh.Actions.ListRepositoryWorkflowRuns(ctx, owner, repo, &github.ListWorkflowRunsOptions{
		Branch:      string(q.Branch),
		Status:      q.Status,
		ListOptions: github.ListOptions{Page: page.Page, PerPage: page.PerPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	result := make([]*model.WorkflowRunSummary, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		result = append(result, toWorkflowRunSummary(run))
	}

	return result, nil
}

func (x *Client) GetWorkflowRun(ctx context.Context, q *model.GetWorkflowRunQuery) (*model.WorkflowRunSummary, error) {
	owner, repo, err := x.resolveRepo(q.RepoRef)
	if err != nil {
		return nil, err
	}

	run, _, err := x.gh.Actions.GetWorkflowRunByID(ctx, owner, repo, q.RunID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workflow run",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("runID", q.RunID),
		)
	}

	return toWorkflowRunSummary(run), nil
}

func (x *Client) ListUserRepositories(ctx context.Context, q *model.ListUserRepositoriesQuery) ([]*model.RepositorySummary, error) {
	page := q.Page.Normalize()

	// Empty user means the authenticated user
	repos, _, err := x.gh.Repositories.List(ctx, "", &github.RepositoryListOptions{
		Type:        q.Type,
		Sort:        q.Sort,
		ListOptions: github.ListOptions{Page: page.Page, PerPage: page.PerPage},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user repositories")
	}

	result := make([]*model.RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		result = append(result, &model.RepositorySummary{
			ID:            repo.GetID(),
			Owner:         repo.GetOwner().GetLogin(),
			Name:          repo.GetName(),
			FullName:      repo.GetFullName(),
			Description:   repo.GetDescription(),
			Private:       repo.GetPrivate(),
			DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
			Language:      repo.GetLanguage(),
			Stars:         repo.GetStargazersCount(),
			HTMLURL:       repo.GetHTMLURL(),
		})
	}

	return result, nil
}

func toPullRequestSummary(pr *github.PullRequest) *model.PullRequestSummary {
	return &model.PullRequestSummary{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		Author:    pr.GetUser().GetLogin(),
		Head:      types.BranchName(pr.GetHead().GetRef()),
		Base:      types.BranchName(pr.GetBase().GetRef()),
		Draft:     pr.GetDraft(),
		Merged:    pr.GetMerged(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
		HTMLURL:   pr.GetHTMLURL(),
	}
}

func toWorkflowRunSummary(run *github.WorkflowRun) *model.WorkflowRunSummary {
	return &model.WorkflowRunSummary{
		ID:         run.GetID(),
		Name:       run.GetName(),
		Branch:     types.BranchName(run.GetHeadBranch()),
		Event:      run.GetEvent(),
		Status:     run.GetStatus(),
		Conclusion: run.GetConclusion(),
		RunNumber:  run.GetRunNumber(),
		CreatedAt:  run.GetCreatedAt().Time,
		HTMLURL:    run.GetHTMLURL(),
	}
}
