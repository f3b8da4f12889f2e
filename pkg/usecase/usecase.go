package usecase

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	// workspaceRoot is the directory containing per-user Git repositories
	workspaceRoot string
}

type Option func(*UseCase)

func WithWorkspaceRoot(dir string) Option {
	return func(x *UseCase) {
		x.workspaceRoot = dir
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

var _ interfaces.UseCase = (*UseCase)(nil)

func (x *UseCase) requireRepository() error {
	if x.clients.Repository() == nil {
		return goerr.New("entity repository is required (Firestore must be configured)")
	}
	return nil
}

func (x *UseCase) requireGitHub() error {
	if x.clients.GitHub() == nil {
		return goerr.Wrap(types.ErrValidationFailed, "GitHub client is not configured (access token must be set)")
	}
	return nil
}
