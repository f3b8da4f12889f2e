package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

type achievementsResponse struct {
	Achievements []*model.Achievement `json:"achievements"`
}

func createAchievement(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CreateAchievementInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode achievement", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		achievement, err := uc.CreateAchievement(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to create achievement", err)
			return
		}

		respondJSON(w, http.StatusCreated, achievement)
	}
}

func getAchievement(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.AchievementID(chi.URLParam(r, "achievementID"))

		achievement, err := uc.GetAchievement(r.Context(), userIDFrom(r.Context()), id)
		if err != nil {
			respondError(w, r, "fail to get achievement", err)
			return
		}

		respondJSON(w, http.StatusOK, achievement)
	}
}

func listAchievements(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := uc.ListAchievements(r.Context(), userIDFrom(r.Context()))
		if err != nil {
			respondError(w, r, "fail to list achievements", err)
			return
		}

		respondJSON(w, http.StatusOK, achievementsResponse{Achievements: achievements})
	}
}

func deleteAchievement(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.AchievementID(chi.URLParam(r, "achievementID"))

		if err := uc.DeleteAchievement(r.Context(), userIDFrom(r.Context()), id); err != nil {
			respondError(w, r, "fail to delete achievement", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
