package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

type commitsResponse struct {
	Commits []*model.CommitSummary `json:"commits"`
}

type pullRequestsResponse struct {
	PullRequests []*model.PullRequestSummary `json:"pull_requests"`
}

type pullRequestFilesResponse struct {
	Files []*model.PullRequestFile `json:"files"`
}

type checkRunsResponse struct {
	CheckRuns []*model.CheckRunSummary `json:"check_runs"`
}

type workflowRunsResponse struct {
	WorkflowRuns []*model.WorkflowRunSummary `json:"workflow_runs"`
}

type repositoriesResponse struct {
	Repositories []*model.RepositorySummary `json:"repositories"`
}

func urlParamInt(r *http.Request, key string) (int, error) {
	v := chi.URLParam(r, key)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid integer path parameter",
			goerr.V("key", key),
			goerr.V("value", v),
		)
	}
	return n, nil
}

func listCommits(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFrom(r)
		if err != nil {
			respondError(w, r, "fail to parse commit query", err)
			return
		}
		q := &model.ListCommitsQuery{
			RepoRef: repoRefFrom(r),
			Page:    page,
		}

		commits, err := uc.ListCommits(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to list commits", err)
			return
		}

		respondJSON(w, http.StatusOK, commitsResponse{Commits: commits})
	}
}

func listPullRequests(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFrom(r)
		if err != nil {
			respondError(w, r, "fail to parse pull request query", err)
			return
		}
		q := &model.ListPullRequestsQuery{
			RepoRef: repoRefFrom(r),
			Page:    page,
			State:   r.URL.Query().Get("state"),
		}

		pulls, err := uc.ListPullRequests(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to list pull requests", err)
			return
		}

		respondJSON(w, http.StatusOK, pullRequestsResponse{PullRequests: pulls})
	}
}

func getPullRequest(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := urlParamInt(r, "number")
		if err != nil {
			respondError(w, r, "fail to parse pull request number", err)
			return
		}
		q := &model.GetPullRequestQuery{
			RepoRef: repoRefFrom(r),
			Number:  number,
		}

		pull, err := uc.GetPullRequest(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to get pull request", err)
			return
		}

		respondJSON(w, http.StatusOK, pull)
	}
}

func listPullRequestFiles(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := urlParamInt(r, "number")
		if err != nil {
			respondError(w, r, "fail to parse pull request number", err)
			return
		}
		page, err := pageFrom(r)
		if err != nil {
			respondError(w, r, "fail to parse pull request file query", err)
			return
		}
		q := &model.ListPullRequestFilesQuery{
			RepoRef: repoRefFrom(r),
			Page:    page,
			Number:  number,
		}

		files, err := uc.ListPullRequestFiles(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to list pull request files", err)
			return
		}

		respondJSON(w, http.StatusOK, pullRequestFilesResponse{Files: files})
	}
}

func listCheckRuns(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFrom(r)
		if err != nil {
			respondError(w, r, "fail to parse check run query", err)
			return
		}
		q := &model.ListCheckRunsQuery{
			RepoRef: repoRefFrom(r),
			Page:    page,
			SHA:     types.CommitSHA(chi.URLParam(r, "sha")),
		}

		checks, err := uc.ListCheckRuns(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to list check runs", err)
			return
		}

		respondJSON(w, http.StatusOK, checkRunsResponse{CheckRuns: checks})
	}
}

func listWorkflowRuns(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFrom(r)
		if err != nil {
			respondError(w, r, "fail to parse workflow run query", err)
			return
		}
		q := &model.ListWorkflowRunsQuery{
			RepoRef: repoRefFrom(r),
			Page:    page,
			Branch:  types.BranchName(r.URL.Query().Get("branch")),
			Status:  r.URL.Query().Get("status"),
		}

		runs, err := uc.ListWorkflowRuns(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to list workflow runs", err)
			return
		}

		respondJSON(w, http.StatusOK, workflowRunsResponse{WorkflowRuns: runs})
	}
}

func getWorkflowRun(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := chi.URLParam(r, "runID")
		runID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(w, r, "fail to parse workflow run ID",
				goerr.Wrap(types.ErrValidationFailed, "invalid workflow run ID", goerr.V("value", v)))
			return
		}
		q := &model.GetWorkflowRunQuery{
			RepoRef: repoRefFrom(r),
			RunID:   runID,
		}

		run, err := uc.GetWorkflowRun(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to get workflow run", err)
			return
		}

		respondJSON(w, http.StatusOK, run)
	}
}

func listUserRepositories(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageFrom(r)
		if err != nil {
			respondError(w, r, "fail to parse repository query", err)
			return
		}
		q := &model.ListUserRepositoriesQuery{
			Page: page,
			Type: r.URL.Query().Get("type"),
			Sort: r.URL.Query().Get("sort"),
		}

		repos, err := uc.ListUserRepositories(r.Context(), q)
		if err != nil {
			respondError(w, r, "fail to list repositories", err)
			return
		}

		respondJSON(w, http.StatusOK, repositoriesResponse{Repositories: repos})
	}
}
