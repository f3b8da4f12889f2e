package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

// GetGitStatus returns a fresh snapshot of the authorized working tree.
func (x *UseCase) GetGitStatus(ctx context.Context, req *model.RepoRequest) (*model.GitStatus, error) {
	dir, err := x.authorizeRepo(req)
	if err != nil {
		return nil, err
	}

	status, err := x.clients.Git().Status(ctx, dir)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("git status",
		slog.Any("userID", req.UserID),
		slog.Any("repoPath", req.RepoPath),
		slog.Any("branch", status.Branch),
	)

	return status, nil
}

func (x *UseCase) StageFiles(ctx context.Context, input *model.StageFilesInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	dir, err := x.authorizeRepo(&input.RepoRequest)
	if err != nil {
		return err
	}

	if err := x.clients.Git().StageFiles(ctx, dir, input.Files); err != nil {
		return err
	}

	logging.From(ctx).Info("staged files",
		slog.Any("userID", input.UserID),
		slog.Any("repoPath", input.RepoPath),
		slog.Int("count", len(input.Files)),
	)

	return nil
}

func (x *UseCase) UnstageFiles(ctx context.Context, input *model.StageFilesInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	dir, err := x.authorizeRepo(&input.RepoRequest)
	if err != nil {
		return err
	}

	if err := x.clients.Git().UnstageFiles(ctx, dir, input.Files); err != nil {
		return err
	}

	logging.From(ctx).Info("unstaged files",
		slog.Any("userID", input.UserID),
		slog.Any("repoPath", input.RepoPath),
		slog.Int("count", len(input.Files)),
	)

	return nil
}

func (x *UseCase) DeleteBranch(ctx context.Context, input *model.DeleteBranchInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	dir, err := x.authorizeRepo(&input.RepoRequest)
	if err != nil {
		return err
	}

	if err := x.clients.Git().DeleteBranch(ctx, dir, input.Branch, input.Force); err != nil {
		return err
	}

	logging.From(ctx).Info("deleted branch",
		slog.Any("userID", input.UserID),
		slog.Any("repoPath", input.RepoPath),
		slog.Any("branch", input.Branch),
		slog.Bool("force", input.Force),
	)

	return nil
}

// ValidateRepository reports whether the authorized path is a Git repository
// root. "Not a repository" is a normal false result, not an error.
func (x *UseCase) ValidateRepository(ctx context.Context, req *model.RepoRequest) (bool, error) {
	dir, err := x.authorizeRepo(req)
	if err != nil {
		return false, err
	}

	ok, err := x.clients.Git().IsRepository(ctx, dir)
	if err != nil {
		return false, goerr.Wrap(err, "failed to validate repository",
			goerr.V("repoPath", req.RepoPath),
		)
	}

	return ok, nil
}
