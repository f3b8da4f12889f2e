package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/infra"
	"github.com/secondbrain-app/secondbrain/pkg/infra/gitrepo"
	"github.com/secondbrain-app/secondbrain/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.Git()).Equal(nil)
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.GenAI()).Equal(nil)
		gt.V(t, clients.ActivitySink()).Equal(nil)
		gt.V(t, clients.Repository()).Equal(nil)
	})

	t.Run("WithGit option sets Git client", func(t *testing.T) {
		gitClient := gitrepo.New()
		clients := infra.New(infra.WithGit(gitClient))
		gt.V(t, clients.Git()).Equal(gitClient)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("WithRepository option sets repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithRepository(repo))
		gt.V(t, clients.Repository()).Equal(repo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		gitClient := gitrepo.New()
		repo := memory.New()
		mockHTTP := &mockHTTPClient{}

		clients := infra.New(
			infra.WithGit(gitClient),
			infra.WithRepository(repo),
			infra.WithHTTPClient(mockHTTP),
		)

		gt.V(t, clients.Git()).Equal(gitClient)
		gt.V(t, clients.Repository()).Equal(repo)
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
