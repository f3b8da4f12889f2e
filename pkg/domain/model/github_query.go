package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

const (
	defaultPerPage = 30
	maxPerPage     = 100
)

// Page carries standard GitHub list pagination. Zero values are normalized
// to page 1 / 30 per page; per-page is clamped to the API maximum of 100.
type Page struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

func (x Page) Normalize() Page {
	if x.Page < 1 {
		x.Page = 1
	}
	if x.PerPage < 1 {
		x.PerPage = defaultPerPage
	}
	if x.PerPage > maxPerPage {
		x.PerPage = maxPerPage
	}
	return x
}

// RepoRef selects the target repository. Empty fields fall back to the
// configured default owner/repo.
type RepoRef struct {
	Owner string `json:"owner,omitempty"`
	Repo  string `json:"repo,omitempty"`
}

type ListCommitsQuery struct {
	RepoRef
	Page
}

type ListPullRequestsQuery struct {
	RepoRef
	Page
	State string `json:"state,omitempty"` // open, closed, all
}

func (x *ListPullRequestsQuery) Validate() error {
	switch x.State {
	case "", "open", "closed", "all":
		return nil
	}
	return goerr.Wrap(types.ErrValidationFailed, "invalid pull request state",
		goerr.V("state", x.State))
}

type GetPullRequestQuery struct {
	RepoRef
	Number int `json:"number"`
}

func (x *GetPullRequestQuery) Validate() error {
	if x.Number < 1 {
		return goerr.Wrap(types.ErrValidationFailed, "pull request number must be positive",
			goerr.V("number", x.Number))
	}
	return nil
}

type ListPullRequestFilesQuery struct {
	RepoRef
	Page
	Number int `json:"number"`
}

func (x *ListPullRequestFilesQuery) Validate() error {
	if x.Number < 1 {
		return goerr.Wrap(types.ErrValidationFailed, "pull request number must be positive",
			goerr.V("number", x.Number))
	}
	return nil
}

type ListCheckRunsQuery struct {
	RepoRef
	Page
	SHA types.CommitSHA `json:"sha"`
}

func (x *ListCheckRunsQuery) Validate() error {
	if x.SHA == "" {
		return goerr.Wrap(types.ErrValidationFailed, "commit SHA is empty")
	}
	return nil
}

type ListWorkflowRunsQuery struct {
	RepoRef
	Page
	Branch types.BranchName `json:"branch,omitempty"`
	Status string           `json:"status,omitempty"`
}

type GetWorkflowRunQuery struct {
	RepoRef
	RunID int64 `json:"run_id"`
}

func (x *GetWorkflowRunQuery) Validate() error {
	if x.RunID < 1 {
		return goerr.Wrap(types.ErrValidationFailed, "workflow run ID must be positive",
			goerr.V("runID", x.RunID))
	}
	return nil
}

type ListUserRepositoriesQuery struct {
	Page
	Type string `json:"type,omitempty"` // all, owner, member
	Sort string `json:"sort,omitempty"` // created, updated, pushed, full_name
}

func (x *ListUserRepositoriesQuery) Validate() error {
	switch x.Type {
	case "", "all", "owner", "member":
	default:
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository type filter",
			goerr.V("type", x.Type))
	}
	switch x.Sort {
	case "", "created", "updated", "pushed", "full_name":
	default:
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository sort",
			goerr.V("sort", x.Sort))
	}
	return nil
}
