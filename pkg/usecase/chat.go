package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/repository"
	"github.com/secondbrain-app/secondbrain/pkg/utils/logging"
)

func (x *UseCase) CreateConversation(ctx context.Context, input *model.CreateConversationInput) (*model.Conversation, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := logging.CtxTime(ctx)
	conv := &model.Conversation{
		ID:        types.NewConversationID(),
		UserID:    input.UserID,
		Title:     input.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := x.clients.Repository().CreateConversation(ctx, conv); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created conversation",
		slog.Any("userID", input.UserID),
		slog.Any("conversationID", conv.ID),
	)

	return conv, nil
}

func (x *UseCase) getOwnedConversation(ctx context.Context, userID types.UserID, id types.ConversationID) (*model.Conversation, error) {
	conv, err := x.clients.Repository().GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrNotFound, "conversation not found",
				goerr.V("conversationID", id))
		}
		return nil, err
	}
	if conv.UserID != userID {
		return nil, goerr.Wrap(types.ErrForbidden, "conversation belongs to another user",
			goerr.V("conversationID", id),
			goerr.V("userID", userID),
		)
	}
	return conv, nil
}

func (x *UseCase) GetConversation(ctx context.Context, userID types.UserID, id types.ConversationID) (*model.Conversation, []*model.ChatMessage, error) {
	if err := x.requireRepository(); err != nil {
		return nil, nil, err
	}

	conv, err := x.getOwnedConversation(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}

	messages, err := x.clients.Repository().ListMessages(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return conv, messages, nil
}

func (x *UseCase) ListConversations(ctx context.Context, userID types.UserID) ([]*model.Conversation, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	return x.clients.Repository().ListConversations(ctx, userID)
}

func (x *UseCase) DeleteConversation(ctx context.Context, userID types.UserID, id types.ConversationID) error {
	if err := x.requireRepository(); err != nil {
		return err
	}

	if _, err := x.getOwnedConversation(ctx, userID, id); err != nil {
		return err
	}

	return x.clients.Repository().DeleteConversation(ctx, id)
}

func (x *UseCase) AppendMessage(ctx context.Context, input *model.AppendMessageInput) (*model.ChatMessage, error) {
	if err := x.requireRepository(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := x.getOwnedConversation(ctx, input.UserID, input.ConversationID); err != nil {
		return nil, err
	}

	msg := &model.ChatMessage{
		ID:        types.NewMessageID(),
		Role:      input.Role,
		Content:   input.Content,
		CreatedAt: logging.CtxTime(ctx),
	}

	if err := x.clients.Repository().AppendMessage(ctx, input.ConversationID, msg); err != nil {
		return nil, err
	}

	return msg, nil
}
