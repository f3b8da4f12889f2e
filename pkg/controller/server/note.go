package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

type notesResponse struct {
	Notes []*model.Note `json:"notes"`
}

func createNote(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CreateNoteInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode note", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		note, err := uc.CreateNote(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to create note", err)
			return
		}

		respondJSON(w, http.StatusCreated, note)
	}
}

func getNote(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID := types.NoteID(chi.URLParam(r, "noteID"))

		note, err := uc.GetNote(r.Context(), userIDFrom(r.Context()), noteID)
		if err != nil {
			respondError(w, r, "fail to get note", err)
			return
		}

		respondJSON(w, http.StatusOK, note)
	}
}

func listNotes(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := uc.ListNotes(r.Context(), userIDFrom(r.Context()))
		if err != nil {
			respondError(w, r, "fail to list notes", err)
			return
		}

		respondJSON(w, http.StatusOK, notesResponse{Notes: notes})
	}
}

func updateNote(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.UpdateNoteInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode note", err)
			return
		}
		input.UserID = userIDFrom(r.Context())
		input.NoteID = types.NoteID(chi.URLParam(r, "noteID"))

		note, err := uc.UpdateNote(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to update note", err)
			return
		}

		respondJSON(w, http.StatusOK, note)
	}
}

func deleteNote(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID := types.NoteID(chi.URLParam(r, "noteID"))

		if err := uc.DeleteNote(r.Context(), userIDFrom(r.Context()), noteID); err != nil {
			respondError(w, r, "fail to delete note", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func bulkDeleteNotes(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.BulkDeleteNotesInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode note ID list", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		result, err := uc.BulkDeleteNotes(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to bulk delete notes", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
