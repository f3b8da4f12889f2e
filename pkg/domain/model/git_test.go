package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

func TestRepoRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := &model.RepoRequest{RepoPath: "knowledge", UserID: "alice"}
		gt.NoError(t, req.Validate())
	})

	t.Run("empty repo path", func(t *testing.T) {
		req := &model.RepoRequest{UserID: "alice"}
		gt.Error(t, req.Validate())
	})

	t.Run("empty user ID", func(t *testing.T) {
		req := &model.RepoRequest{RepoPath: "knowledge"}
		gt.Error(t, req.Validate())
	})
}

func TestRepoRequestEscapes(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		escapes bool
	}{
		{"plain name", "knowledge", false},
		{"nested path", "projects/knowledge", false},
		{"dot segment is cleaned", "./knowledge", false},
		{"internal dotdot stays inside", "projects/../knowledge", false},
		{"parent escape", "../other", true},
		{"bare parent", "..", true},
		{"deep escape", "a/../../other", true},
		{"absolute path", "/etc/passwd", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &model.RepoRequest{RepoPath: types.RepoPath(tc.path), UserID: "alice"}
			gt.V(t, req.Escapes()).Equal(tc.escapes)
		})
	}
}

func TestStageFilesInputValidate(t *testing.T) {
	t.Run("empty file list", func(t *testing.T) {
		input := &model.StageFilesInput{
			RepoRequest: model.RepoRequest{RepoPath: "knowledge", UserID: "alice"},
		}
		gt.Error(t, input.Validate())
	})

	t.Run("blank file name", func(t *testing.T) {
		input := &model.StageFilesInput{
			RepoRequest: model.RepoRequest{RepoPath: "knowledge", UserID: "alice"},
			Files:       []string{"a.md", ""},
		}
		gt.Error(t, input.Validate())
	})
}
