package server

import (
	"net/http"

	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
)

type activitiesResponse struct {
	Activities []*model.Activity `json:"activities"`
}

func recordActivity(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.RecordActivityInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode activity", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		activity, err := uc.RecordActivity(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to record activity", err)
			return
		}

		respondJSON(w, http.StatusCreated, activity)
	}
}

func listActivities(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit")
		if err != nil {
			respondError(w, r, "fail to parse activity query", err)
			return
		}

		activities, err := uc.ListActivities(r.Context(), userIDFrom(r.Context()), limit)
		if err != nil {
			respondError(w, r, "fail to list activities", err)
			return
		}

		respondJSON(w, http.StatusOK, activitiesResponse{Activities: activities})
	}
}
