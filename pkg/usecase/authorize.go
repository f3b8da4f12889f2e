package usecase

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// authorizeRepo checks that the caller may operate on the requested repository
// and returns the resolved filesystem path. Repositories live under
// <workspaceRoot>/<userID>/<repoPath>; a path that escapes the user's
// namespace is rejected before any filesystem access.
func (x *UseCase) authorizeRepo(req *model.RepoRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if x.workspaceRoot == "" {
		return "", goerr.New("git workspace root is not configured")
	}

	if req.Escapes() {
		return "", goerr.Wrap(types.ErrForbidden, "repository path escapes the user workspace",
			goerr.V("repoPath", req.RepoPath),
			goerr.V("userID", req.UserID),
		)
	}

	resolved := filepath.Join(x.workspaceRoot, string(req.UserID), filepath.Clean(string(req.RepoPath)))

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", goerr.Wrap(types.ErrNotFound, "repository not found",
				goerr.V("repoPath", req.RepoPath),
				goerr.V("userID", req.UserID),
			)
		}
		return "", goerr.Wrap(err, "failed to stat repository path",
			goerr.V("repoPath", req.RepoPath),
		)
	}
	if !info.IsDir() {
		return "", goerr.Wrap(types.ErrNotFound, "repository path is not a directory",
			goerr.V("repoPath", req.RepoPath),
		)
	}

	return resolved, nil
}
