package gitrepo

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

// Client implements Git working-tree operations with go-git. go-git calls do
// not accept a context, so each operation checks cancellation up front and
// otherwise runs to completion.
type Client struct{}

var _ interfaces.GitClient = (*Client)(nil)

func New() *Client {
	return &Client{}
}

func open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, goerr.Wrap(types.ErrNotFound, "not a git repository",
				goerr.V("dir", dir))
		}
		return nil, goerr.Wrap(err, "failed to open repository", goerr.V("dir", dir))
	}
	return repo, nil
}

func (x *Client) Status(ctx context.Context, dir string) (*model.GitStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "request cancelled")
	}

	repo, err := open(dir)
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get worktree", goerr.V("dir", dir))
	}

	status, err := wt.Status()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get worktree status", goerr.V("dir", dir))
	}

	result := &model.GitStatus{
		Staged:    []string{},
		Unstaged:  []string{},
		Untracked: []string{},
	}

	for path, st := range status {
		if st.Staging == git.Untracked && st.Worktree == git.Untracked {
			result.Untracked = append(result.Untracked, path)
			continue
		}
		if st.Staging != git.Unmodified {
			result.Staged = append(result.Staged, path)
		}
		if st.Worktree != git.Unmodified {
			result.Unstaged = append(result.Unstaged, path)
		}
	}

	sort.Strings(result.Staged)
	sort.Strings(result.Unstaged)
	sort.Strings(result.Untracked)

	// HEAD is absent in a repository without commits; the branch name is
	// simply empty in that case.
	if head, err := repo.Head(); err == nil {
		result.Branch = types.BranchName(head.Name().Short())
	} else if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, goerr.Wrap(err, "failed to resolve HEAD", goerr.V("dir", dir))
	}

	return result, nil
}

func (x *Client) StageFiles(ctx context.Context, dir string, files []string) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "request cancelled")
	}

	repo, err := open(dir)
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("dir", dir))
	}

	status, err := wt.Status()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree status", goerr.V("dir", dir))
	}

	// Reject unknown files before mutating the index. A file removed from
	// disk is still stageable when the tree tracks it (staging a deletion).
	for _, file := range files {
		if _, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(file))); statErr == nil {
			continue
		}
		if _, tracked := status[file]; tracked {
			continue
		}
		return goerr.Wrap(types.ErrNotFound, "file not found in working tree",
			goerr.V("dir", dir),
			goerr.V("file", file),
		)
	}

	for _, file := range files {
		if _, err := wt.Add(file); err != nil {
			return goerr.Wrap(err, "failed to stage file",
				goerr.V("dir", dir),
				goerr.V("file", file),
			)
		}
	}

	logging.From(ctx).Debug("staged files",
		slog.String("dir", dir),
		slog.Int("count", len(files)),
	)

	return nil
}

func (x *Client) UnstageFiles(ctx context.Context, dir string, files []string) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "request cancelled")
	}

	repo, err := open(dir)
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("dir", dir))
	}

	status, err := wt.Status()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree status", goerr.V("dir", dir))
	}

	for _, file := range files {
		if _, tracked := status[file]; !tracked {
			if _, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(file))); statErr != nil {
				return goerr.Wrap(types.ErrNotFound, "file not found in working tree",
					goerr.V("dir", dir),
					goerr.V("file", file),
				)
			}
		}
	}

	if err := wt.Restore(&git.RestoreOptions{
		Staged: true,
		Files:  files,
	}); err != nil {
		return goerr.Wrap(err, "failed to unstage files",
			goerr.V("dir", dir),
			goerr.V("files", files),
		)
	}

	logging.From(ctx).Debug("unstaged files",
		slog.String("dir", dir),
		slog.Int("count", len(files)),
	)

	return nil
}

func (x *Client) DeleteBranch(ctx context.Context, dir string, branch types.BranchName, force bool) error {
	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "request cancelled")
	}

	repo, err := open(dir)
	if err != nil {
		return err
	}

	refName := plumbing.NewBranchReferenceName(string(branch))
	ref, err := repo.Reference(refName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return goerr.Wrap(types.ErrNotFound, "branch not found",
				goerr.V("dir", dir),
				goerr.V("branch", branch),
			)
		}
		return goerr.Wrap(err, "failed to resolve branch",
			goerr.V("dir", dir),
			goerr.V("branch", branch),
		)
	}

	head, err := repo.Head()
	if err != nil {
		return goerr.Wrap(err, "failed to resolve HEAD", goerr.V("dir", dir))
	}
	if head.Name() == refName {
		return goerr.Wrap(types.ErrValidationFailed, "cannot delete the checked out branch",
			goerr.V("branch", branch),
		)
	}

	if !force {
		merged, err := x.isMerged(repo, ref.Hash(), head.Hash())
		if err != nil {
			return err
		}
		if !merged {
			return goerr.Wrap(types.ErrValidationFailed, "branch has unmerged commits, use force to delete",
				goerr.V("branch", branch),
			)
		}
	}

	if err := repo.Storer.RemoveReference(refName); err != nil {
		return goerr.Wrap(err, "failed to delete branch",
			goerr.V("dir", dir),
			goerr.V("branch", branch),
		)
	}

	logging.From(ctx).Info("deleted branch",
		slog.String("dir", dir),
		slog.Any("branch", branch),
		slog.Bool("force", force),
	)

	return nil
}

// isMerged reports whether the branch tip is reachable from HEAD.
func (x *Client) isMerged(repo *git.Repository, branchTip, headTip plumbing.Hash) (bool, error) {
	if branchTip == headTip {
		return true, nil
	}

	branchCommit, err := repo.CommitObject(branchTip)
	if err != nil {
		return false, goerr.Wrap(err, "failed to load branch commit", goerr.V("hash", branchTip))
	}
	headCommit, err := repo.CommitObject(headTip)
	if err != nil {
		return false, goerr.Wrap(err, "failed to load HEAD commit", goerr.V("hash", headTip))
	}

	merged, err := branchCommit.IsAncestor(headCommit)
	if err != nil {
		return false, goerr.Wrap(err, "failed to check branch ancestry")
	}
	return merged, nil
}

func (x *Client) IsRepository(ctx context.Context, dir string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, goerr.Wrap(err, "request cancelled")
	}

	if _, err := git.PlainOpen(dir); err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to open repository", goerr.V("dir", dir))
	}
	return true, nil
}
