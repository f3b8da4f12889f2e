package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/controller/server"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/infra"
	"github.com/secondbrain-app/secondbrain/pkg/infra/gitrepo"
	"github.com/secondbrain-app/secondbrain/pkg/repository/memory"
	"github.com/secondbrain-app/secondbrain/pkg/usecase"
)

func newTestServer(t *testing.T, options ...infra.Option) *server.Server {
	t.Helper()
	options = append([]infra.Option{infra.WithRepository(memory.New())}, options...)
	uc := usecase.New(infra.New(options...))
	return server.New(uc)
}

func doJSON(t *testing.T, srv *server.Server, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(server.UserIDHeader, user)
	}
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestRequireUser(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/notes", "", nil)
	gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
}

func TestNoteEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/notes", "alice", map[string]any{
		"title":   "daily log",
		"content": "wrote tests",
		"tags":    []string{"work"},
	})
	gt.V(t, rec.Code).Equal(http.StatusCreated)

	var created model.Note
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	gt.V(t, created.Title).Equal("daily log")

	t.Run("get returns the note", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/notes/"+string(created.ID), "alice", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var got model.Note
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		gt.V(t, got.ID).Equal(created.ID)
	})

	t.Run("other user gets 403", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/notes/"+string(created.ID), "mallory", nil)
		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("unknown ID gets 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/notes/no-such-note", "alice", nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("empty title gets 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/notes", "alice", map[string]any{
			"content": "untitled",
		})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("update and list", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPut, "/api/v1/notes/"+string(created.ID), "alice", map[string]any{
			"title":   "daily log v2",
			"content": "edited",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		rec = doJSON(t, srv, http.MethodGet, "/api/v1/notes", "alice", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var listed struct {
			Notes []*model.Note `json:"notes"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		gt.A(t, listed.Notes).Length(1)
		gt.V(t, listed.Notes[0].Title).Equal("daily log v2")
	})

	t.Run("delete removes the note", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, "/api/v1/notes/"+string(created.ID), "alice", nil)
		gt.V(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, srv, http.MethodGet, "/api/v1/notes/"+string(created.ID), "alice", nil)
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestBulkDeleteNotesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/notes", "alice", map[string]any{"title": title})
		gt.V(t, rec.Code).Equal(http.StatusCreated)

		var note model.Note
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
		ids = append(ids, string(note.ID))
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/notes/bulk-delete", "alice", map[string]any{
		"note_ids": append(ids, "missing-id"),
	})
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var result model.BulkDeleteNotesResult
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	gt.V(t, result.Deleted).Equal(3)
}

func TestConversationEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/conversations", "alice", map[string]any{
		"title": "planning",
	})
	gt.V(t, rec.Code).Equal(http.StatusCreated)

	var conv model.Conversation
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/conversations/"+string(conv.ID)+"/messages", "alice", map[string]any{
		"role":    "user",
		"content": "what is next?",
	})
	gt.V(t, rec.Code).Equal(http.StatusCreated)

	t.Run("invalid role gets 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/conversations/"+string(conv.ID)+"/messages", "alice", map[string]any{
			"role":    "oracle",
			"content": "hello",
		})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("get returns conversation with messages", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/conversations/"+string(conv.ID), "alice", nil)
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var got struct {
			Conversation *model.Conversation  `json:"conversation"`
			Messages     []*model.ChatMessage `json:"messages"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		gt.V(t, got.Conversation.ID).Equal(conv.ID)
		gt.A(t, got.Messages).Length(1)
		gt.V(t, got.Messages[0].Content).Equal("what is next?")
	})
}

func TestPreferenceEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/v1/preferences/theme", "alice", map[string]any{
		"value": "dark",
	})
	gt.V(t, rec.Code).Equal(http.StatusOK)

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/preferences/theme", "alice", nil)
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var pref model.Preference
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pref))
	gt.V(t, pref.Value).Equal("dark")

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/preferences/theme", "bob", nil)
	gt.V(t, rec.Code).Equal(http.StatusNotFound)
}

func newGitServer(t *testing.T, userID, repoName string) (*server.Server, string) {
	t.Helper()
	root := t.TempDir()
	repoDir := filepath.Join(root, userID, repoName)
	gt.NoError(t, os.MkdirAll(repoDir, 0o755))

	repo, err := git.PlainInit(repoDir, false)
	gt.NoError(t, err)

	gt.NoError(t, os.WriteFile(filepath.Join(repoDir, "README.md"), []byte("# repo\n"), 0o644))

	wt, err := repo.Worktree()
	gt.NoError(t, err)
	_, err = wt.Add("README.md")
	gt.NoError(t, err)
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	gt.NoError(t, err)

	clients := infra.New(infra.WithRepository(memory.New()), infra.WithGit(gitrepo.New()))
	uc := usecase.New(clients, usecase.WithWorkspaceRoot(root))
	return server.New(uc), repoDir
}

func TestGitEndpoints(t *testing.T) {
	srv, repoDir := newGitServer(t, "alice", "knowledge")

	gt.NoError(t, os.WriteFile(filepath.Join(repoDir, "draft.md"), []byte("wip\n"), 0o644))

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/git/status", "alice", map[string]any{
		"repo_path": "knowledge",
	})
	gt.V(t, rec.Code).Equal(http.StatusOK)

	var status model.GitStatus
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	gt.A(t, status.Untracked).Length(1)

	t.Run("stage and unstage", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/git/stage", "alice", map[string]any{
			"repo_path": "knowledge",
			"files":     []string{"draft.md"},
		})
		gt.V(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, srv, http.MethodPost, "/api/v1/git/unstage", "alice", map[string]any{
			"repo_path": "knowledge",
			"files":     []string{"draft.md"},
		})
		gt.V(t, rec.Code).Equal(http.StatusNoContent)
	})

	t.Run("escaping path gets 403", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/git/status", "alice", map[string]any{
			"repo_path": "../bob/knowledge",
		})
		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("other user's namespace is empty", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/git/status", "bob", map[string]any{
			"repo_path": "knowledge",
		})
		gt.V(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("validate reports repository", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/git/validate", "alice", map[string]any{
			"repo_path": "knowledge",
		})
		gt.V(t, rec.Code).Equal(http.StatusOK)

		var result struct {
			Valid bool `json:"valid"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		gt.B(t, result.Valid).True()
	})

	t.Run("empty repo path gets 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/git/status", "alice", map[string]any{})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

type stubGenAI struct {
	input *model.UploadFileInput
}

func (x *stubGenAI) UploadFile(ctx context.Context, input *model.UploadFileInput) (*model.UploadedFile, error) {
	x.input = input
	return &model.UploadedFile{
		Name:      "files/abc123",
		URI:       "https://generativelanguage.googleapis.com/v1beta/files/abc123",
		MIMEType:  input.MIMEType,
		SizeBytes: input.Size,
	}, nil
}

func TestGeminiUploadEndpoint(t *testing.T) {
	stub := &stubGenAI{}
	srv := newTestServer(t, infra.WithGenAI(stub))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	gt.NoError(t, mw.WriteField("display_name", "meeting notes"))
	fw, err := mw.CreateFormFile("file", "notes.txt")
	gt.NoError(t, err)
	_, err = fw.Write([]byte("remember the milk"))
	gt.NoError(t, err)
	gt.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/gemini/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(server.UserIDHeader, "alice")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusCreated)
	gt.V(t, stub.input.DisplayName).Equal("meeting notes")
	gt.V(t, string(stub.input.UserID)).Equal("alice")

	var uploaded model.UploadedFile
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))
	gt.V(t, uploaded.Name).Equal("files/abc123")

	t.Run("missing file part gets 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/integrations/gemini/files", "alice", map[string]any{})
		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestGitHubEndpointsWithoutClient(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/github/commits", "alice", nil)
	gt.V(t, rec.Code).Equal(http.StatusBadRequest)
}
