package model

import (
	"time"

	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// Stable local projections of GitHub API responses. Upstream schema changes
// stay contained to the infra layer.

type CommitSummary struct {
	SHA       types.CommitSHA `json:"sha"`
	Message   string          `json:"message"`
	Author    string          `json:"author"`
	Committer string          `json:"committer"`
	Date      time.Time       `json:"date"`
	HTMLURL   string          `json:"html_url"`
}

type PullRequestSummary struct {
	Number    int              `json:"number"`
	Title     string           `json:"title"`
	State     string           `json:"state"`
	Author    string           `json:"author"`
	Head      types.BranchName `json:"head"`
	Base      types.BranchName `json:"base"`
	Draft     bool             `json:"draft"`
	Merged    bool             `json:"merged"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	HTMLURL   string           `json:"html_url"`
}

type PullRequestFile struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Changes   int    `json:"changes"`
}

type CheckRunSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Conclusion  string    `json:"conclusion"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	HTMLURL     string    `json:"html_url"`
}

type WorkflowRunSummary struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Branch     types.BranchName `json:"branch"`
	Event      string           `json:"event"`
	Status     string           `json:"status"`
	Conclusion string           `json:"conclusion"`
	RunNumber  int              `json:"run_number"`
	CreatedAt  time.Time        `json:"created_at"`
	HTMLURL    string           `json:"html_url"`
}

type RepositorySummary struct {
	ID            int64            `json:"id"`
	Owner         string           `json:"owner"`
	Name          string           `json:"name"`
	FullName      string           `json:"full_name"`
	Description   string           `json:"description,omitempty"`
	Private       bool             `json:"private"`
	DefaultBranch types.BranchName `json:"default_branch"`
	Language      string           `json:"language,omitempty"`
	Stars         int              `json:"stars"`
	HTMLURL       string           `json:"html_url"`
}
