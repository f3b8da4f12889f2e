package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/utils/errutil"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the error taxonomy to HTTP status codes. Only unexpected
// errors are reported to the error handler; the rest are caller mistakes.
func respondError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		code = http.StatusBadRequest
	case errors.Is(err, types.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		code = http.StatusNotFound
	}

	if code == http.StatusInternalServerError {
		errutil.HandleError(r.Context(), msg, err)
	} else {
		logging.From(r.Context()).Warn(msg, slog.Any("error", err))
	}

	respondJSON(w, code, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "fail to decode request body",
			goerr.V("cause", err.Error()))
	}
	return nil
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireUser)

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", createNote(uc))
			r.Get("/", listNotes(uc))
			r.Post("/bulk-delete", bulkDeleteNotes(uc))
			r.Route("/{noteID}", func(r chi.Router) {
				r.Get("/", getNote(uc))
				r.Put("/", updateNote(uc))
				r.Delete("/", deleteNote(uc))
			})
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Post("/", createAchievement(uc))
			r.Get("/", listAchievements(uc))
			r.Get("/{achievementID}", getAchievement(uc))
			r.Delete("/{achievementID}", deleteAchievement(uc))
		})

		r.Route("/activities", func(r chi.Router) {
			r.Post("/", recordActivity(uc))
			r.Get("/", listActivities(uc))
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Post("/", createConversation(uc))
			r.Get("/", listConversations(uc))
			r.Route("/{conversationID}", func(r chi.Router) {
				r.Get("/", getConversation(uc))
				r.Delete("/", deleteConversation(uc))
				r.Post("/messages", appendMessage(uc))
			})
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", listPreferences(uc))
			r.Put("/{key}", putPreference(uc))
			r.Get("/{key}", getPreference(uc))
		})

		r.Route("/git", func(r chi.Router) {
			r.Post("/status", gitStatus(uc))
			r.Post("/stage", stageFiles(uc))
			r.Post("/unstage", unstageFiles(uc))
			r.Post("/branch/delete", deleteBranch(uc))
			r.Post("/validate", validateRepository(uc))
		})

		r.Route("/github", func(r chi.Router) {
			r.Get("/commits", listCommits(uc))
			r.Get("/pulls", listPullRequests(uc))
			r.Get("/pulls/{number}", getPullRequest(uc))
			r.Get("/pulls/{number}/files", listPullRequestFiles(uc))
			r.Get("/checks/{sha}", listCheckRuns(uc))
			r.Get("/workflow-runs", listWorkflowRuns(uc))
			r.Get("/workflow-runs/{runID}", getWorkflowRun(uc))
			r.Get("/repositories", listUserRepositories(uc))
		})

		r.Post("/integrations/gemini/files", uploadGeminiFile(uc))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
