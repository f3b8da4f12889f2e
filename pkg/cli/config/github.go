package config

import (
	"context"
	"log/slog"

	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token types.GitHubToken `masq:"secret"`
	owner string
	repo  string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (optional)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("SECONDBRAIN_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Default repository owner for GitHub queries",
			Category:    "GitHub",
			Destination: &x.owner,
			Sources:     cli.EnvVars("SECONDBRAIN_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Default repository name for GitHub queries",
			Category:    "GitHub",
			Destination: &x.repo,
			Sources:     cli.EnvVars("SECONDBRAIN_GITHUB_REPO"),
		},
	}
}

func (x *GitHub) Enabled() bool {
	return x.token != ""
}

func (x *GitHub) NewClient(ctx context.Context) (*githubapi.Client, error) {
	return githubapi.New(ctx, x.token, x.owner, x.repo)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("owner", x.owner),
		slog.String("repo", x.repo),
	)
}
