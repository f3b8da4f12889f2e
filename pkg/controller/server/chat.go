package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

type conversationsResponse struct {
	Conversations []*model.Conversation `json:"conversations"`
}

type conversationResponse struct {
	Conversation *model.Conversation  `json:"conversation"`
	Messages     []*model.ChatMessage `json:"messages"`
}

func createConversation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.CreateConversationInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode conversation", err)
			return
		}
		input.UserID = userIDFrom(r.Context())

		conv, err := uc.CreateConversation(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to create conversation", err)
			return
		}

		respondJSON(w, http.StatusCreated, conv)
	}
}

func getConversation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ConversationID(chi.URLParam(r, "conversationID"))

		conv, messages, err := uc.GetConversation(r.Context(), userIDFrom(r.Context()), id)
		if err != nil {
			respondError(w, r, "fail to get conversation", err)
			return
		}

		respondJSON(w, http.StatusOK, conversationResponse{
			Conversation: conv,
			Messages:     messages,
		})
	}
}

func listConversations(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		convs, err := uc.ListConversations(r.Context(), userIDFrom(r.Context()))
		if err != nil {
			respondError(w, r, "fail to list conversations", err)
			return
		}

		respondJSON(w, http.StatusOK, conversationsResponse{Conversations: convs})
	}
}

func deleteConversation(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.ConversationID(chi.URLParam(r, "conversationID"))

		if err := uc.DeleteConversation(r.Context(), userIDFrom(r.Context()), id); err != nil {
			respondError(w, r, "fail to delete conversation", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func appendMessage(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.AppendMessageInput
		if err := decodeJSON(r, &input); err != nil {
			respondError(w, r, "fail to decode message", err)
			return
		}
		input.UserID = userIDFrom(r.Context())
		input.ConversationID = types.ConversationID(chi.URLParam(r, "conversationID"))

		msg, err := uc.AppendMessage(r.Context(), &input)
		if err != nil {
			respondError(w, r, "fail to append message", err)
			return
		}

		respondJSON(w, http.StatusCreated, msg)
	}
}
