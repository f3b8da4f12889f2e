package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
)

type preferencesResponse struct {
	Preferences []*model.Preference `json:"preferences"`
}

func putPreference(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.PutPreferenceInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode preference", err)
			return
		}
		input.UserID = userIDFrom(r.Context())
		input.Key = chi.URLParam(r, "key")

		pref, err := uc.PutPreference(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to put preference", err)
			return
		}

		respondJSON(w, http.StatusOK, pref)
	}
}

func getPreference(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		pref, err := uc.GetPreference(r.Context(), userIDFrom(r.Context()), key)
		if err != nil {
			respondError(w, r, "fail to get preference", err)
			return
		}

		respondJSON(w, http.StatusOK, pref)
	}
}

func listPreferences(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := uc.ListPreferences(r.Context(), userIDFrom(r.Context()))
		if err != nil {
			respondError(w, r, "fail to list preferences", err)
			return
		}

		respondJSON(w, http.StatusOK, preferencesResponse{Preferences: prefs})
	}
}
