package model

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// GitStatus is a snapshot of a working tree, produced fresh on each query
type GitStatus struct {
	Branch    types.BranchName `json:"branch"`
	Staged    []string         `json:"staged"`
	Unstaged  []string         `json:"unstaged"`
	Untracked []string         `json:"untracked"`
}

// RepoRequest identifies the repository a Git operation targets. RepoPath is
// relative to the caller's workspace namespace and is resolved by authorization.
type RepoRequest struct {
	RepoPath types.RepoPath `json:"repo_path"`
	UserID   types.UserID   `json:"-"`
}

func (x *RepoRequest) Validate() error {
	if x.RepoPath == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo path is empty")
	}
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	return nil
}

// Escapes reports whether the repo path points outside the user's namespace.
func (x *RepoRequest) Escapes() bool {
	p := filepath.Clean(string(x.RepoPath))
	return filepath.IsAbs(p) || p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator))
}

type StageFilesInput struct {
	RepoRequest
	Files []string `json:"files"`
}

func (x *StageFilesInput) Validate() error {
	if err := x.RepoRequest.Validate(); err != nil {
		return err
	}
	if len(x.Files) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "file list is empty")
	}
	for _, f := range x.Files {
		if f == "" {
			return goerr.Wrap(types.ErrValidationFailed, "file name is empty")
		}
	}
	return nil
}

type DeleteBranchInput struct {
	RepoRequest
	Branch types.BranchName `json:"branch"`
	Force  bool             `json:"force"`
}

func (x *DeleteBranchInput) Validate() error {
	if err := x.RepoRequest.Validate(); err != nil {
		return err
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch name is empty")
	}
	return nil
}
