package server

import (
	"net/http"

	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
)

type validateRepositoryResponse struct {
	Valid bool `json:"valid"`
}

func gitStatus(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.RepoRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, "fail to decode git status request", err)
			return
		}
		req.UserID = userIDFrom(r.Context())

		status, err := uc.GetGitStatus(r.Context(), &req)
		if err != nil {
			respondError(w, r, "fail to get git status", err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}

func stageFiles(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.StageFilesInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode stage request", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		if err := uc.StageFiles(r.Context(), &input); err != nil {
			respondError(w, r, "fail to stage files", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func unstageFiles(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.StageFilesInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode unstage request", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		if err := uc.UnstageFiles(r.Context(), &input); err != nil {
			respondError(w, r, "fail to unstage files", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteBranch(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.DeleteBranchInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode branch delete request", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		if err := uc.DeleteBranch(r.Context(), &input); err != nil {
			respondError(w, r, "fail to delete branch", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func validateRepository(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.RepoRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, "fail to decode validate request", err)
			return
		}
		req.UserID = userIDFrom(r.Context())

		valid, err := uc.ValidateRepository(r.Context(), &req)
		if err != nil {
			respondError(w, r, "fail to validate repository", err)
			return
		}

		respondJSON(w, http.StatusOK, validateRepositoryResponse{Valid: valid})
	}
}
