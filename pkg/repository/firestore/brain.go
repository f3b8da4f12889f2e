package firestore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionNote         = "note"
	collectionAchievement  = "achievement"
	collectionActivity     = "activity"
	collectionConversation = "conversation"
	collectionMessage      = "message"
	collectionPreference   = "preference"
)

type brainRepository struct {
	client *firestore.Client
}

// ToPreferenceDocID builds a Firestore-safe document ID from user ID and key.
// User IDs cannot contain colons, so the separator is unambiguous.
func ToPreferenceDocID(userID types.UserID, key string) (string, error) {
	if userID == "" || key == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "user ID or key is empty",
			goerr.V("userID", userID),
			goerr.V("key", key),
		)
	}
	if strings.Contains(string(userID), ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "user ID contains invalid character ':'",
			goerr.V("userID", userID),
		)
	}
	return string(userID) + ":" + key, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// Note operations

func (r *brainRepository) CreateNote(ctx context.Context, note *model.Note) error {
	docRef := r.client.Collection(collectionNote).Doc(string(note.ID))

	if _, err := docRef.Create(ctx, note); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "note already exists",
				goerr.V("noteID", note.ID),
			)
		}
		return goerr.Wrap(err, "failed to create note",
			goerr.V("noteID", note.ID),
		)
	}

	return nil
}

func (r *brainRepository) GetNote(ctx context.Context, id types.NoteID) (*model.Note, error) {
	snap, err := r.client.Collection(collectionNote).Doc(string(id)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "note not found",
				goerr.V("noteID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get note",
			goerr.V("noteID", id),
		)
	}

	var note model.Note
	if err := snap.DataTo(&note); err != nil {
		return nil, goerr.Wrap(err, "failed to decode note",
			goerr.V("noteID", id),
		)
	}

	return &note, nil
}

func (r *brainRepository) ListNotes(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	query := r.client.Collection(collectionNote).Where("user_id", "==", string(userID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var notes []*model.Note
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list notes",
				goerr.V("userID", userID),
			)
		}

		var note model.Note
		if err := snap.DataTo(&note); err != nil {
			return nil, goerr.Wrap(err, "failed to decode note")
		}
		notes = append(notes, &note)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

func (r *brainRepository) UpdateNote(ctx context.Context, note *model.Note) error {
	docRef := r.client.Collection(collectionNote).Doc(string(note.ID))

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(repository.ErrNotFound, "note not found",
				goerr.V("noteID", note.ID),
			)
		}
		return goerr.Wrap(err, "failed to get note",
			goerr.V("noteID", note.ID),
		)
	}

	if _, err := docRef.Set(ctx, note); err != nil {
		return goerr.Wrap(err, "failed to update note",
			goerr.V("noteID", note.ID),
		)
	}

	return nil
}

func (r *brainRepository) DeleteNote(ctx context.Context, id types.NoteID) error {
	docRef := r.client.Collection(collectionNote).Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(repository.ErrNotFound, "note not found",
				goerr.V("noteID", id),
			)
		}
		return goerr.Wrap(err, "failed to get note",
			goerr.V("noteID", id),
		)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete note",
			goerr.V("noteID", id),
		)
	}

	return nil
}

// Achievement operations

func (r *brainRepository) CreateAchievement(ctx context.Context, achievement *model.Achievement) error {
	docRef := r.client.Collection(collectionAchievement).Doc(string(achievement.ID))

	if _, err := docRef.Create(ctx, achievement); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "achievement already exists",
				goerr.V("achievementID", achievement.ID),
			)
		}
		return goerr.Wrap(err, "failed to create achievement",
			goerr.V("achievementID", achievement.ID),
		)
	}

	return nil
}

func (r *brainRepository) GetAchievement(ctx context.Context, id types.AchievementID) (*model.Achievement, error) {
	snap, err := r.client.Collection(collectionAchievement).Doc(string(id)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "achievement not found",
				goerr.V("achievementID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get achievement",
			goerr.V("achievementID", id),
		)
	}

	var achievement model.Achievement
	if err := snap.DataTo(&achievement); err != nil {
		return nil, goerr.Wrap(err, "failed to decode achievement",
			goerr.V("achievementID", id),
		)
	}

	return &achievement, nil
}

func (r *brainRepository) ListAchievements(ctx context.Context, userID types.UserID) ([]*model.Achievement, error) {
	query := r.client.Collection(collectionAchievement).Where("user_id", "==", string(userID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var achievements []*model.Achievement
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list achievements",
				goerr.V("userID", userID),
			)
		}

		var achievement model.Achievement
		if err := snap.DataTo(&achievement); err != nil {
			return nil, goerr.Wrap(err, "failed to decode achievement")
		}
		achievements = append(achievements, &achievement)
	}

	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].AchievedAt.After(achievements[j].AchievedAt)
	})

	return achievements, nil
}

func (r *brainRepository) DeleteAchievement(ctx context.Context, id types.AchievementID) error {
	docRef := r.client.Collection(collectionAchievement).Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(repository.ErrNotFound, "achievement not found",
				goerr.V("achievementID", id),
			)
		}
		return goerr.Wrap(err, "failed to get achievement",
			goerr.V("achievementID", id),
		)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete achievement",
			goerr.V("achievementID", id),
		)
	}

	return nil
}

// Activity operations

func (r *brainRepository) RecordActivity(ctx context.Context, activity *model.Activity) error {
	docRef := r.client.Collection(collectionActivity).Doc(string(activity.ID))

	if _, err := docRef.Set(ctx, activity); err != nil {
		return goerr.Wrap(err, "failed to record activity",
			goerr.V("activityID", activity.ID),
		)
	}

	return nil
}

func (r *brainRepository) ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
	query := r.client.Collection(collectionActivity).Where("user_id", "==", string(userID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var activities []*model.Activity
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list activities",
				goerr.V("userID", userID),
			)
		}

		var activity model.Activity
		if err := snap.DataTo(&activity); err != nil {
			return nil, goerr.Wrap(err, "failed to decode activity")
		}
		activities = append(activities, &activity)
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].OccurredAt.After(activities[j].OccurredAt)
	})

	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}

	return activities, nil
}

// Conversation operations

func (r *brainRepository) CreateConversation(ctx context.Context, conv *model.Conversation) error {
	docRef := r.client.Collection(collectionConversation).Doc(string(conv.ID))

	if _, err := docRef.Create(ctx, conv); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return goerr.Wrap(repository.ErrAlreadyExists, "conversation already exists",
				goerr.V("conversationID", conv.ID),
			)
		}
		return goerr.Wrap(err, "failed to create conversation",
			goerr.V("conversationID", conv.ID),
		)
	}

	return nil
}

func (r *brainRepository) GetConversation(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	snap, err := r.client.Collection(collectionConversation).Doc(string(id)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "conversation not found",
				goerr.V("conversationID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get conversation",
			goerr.V("conversationID", id),
		)
	}

	var conv model.Conversation
	if err := snap.DataTo(&conv); err != nil {
		return nil, goerr.Wrap(err, "failed to decode conversation",
			goerr.V("conversationID", id),
		)
	}

	return &conv, nil
}

func (r *brainRepository) ListConversations(ctx context.Context, userID types.UserID) ([]*model.Conversation, error) {
	query := r.client.Collection(collectionConversation).Where("user_id", "==", string(userID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var convs []*model.Conversation
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list conversations",
				goerr.V("userID", userID),
			)
		}

		var conv model.Conversation
		if err := snap.DataTo(&conv); err != nil {
			return nil, goerr.Wrap(err, "failed to decode conversation")
		}
		convs = append(convs, &conv)
	}

	sort.Slice(convs, func(i, j int) bool {
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})

	return convs, nil
}

func (r *brainRepository) DeleteConversation(ctx context.Context, id types.ConversationID) error {
	docRef := r.client.Collection(collectionConversation).Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(repository.ErrNotFound, "conversation not found",
				goerr.V("conversationID", id),
			)
		}
		return goerr.Wrap(err, "failed to get conversation",
			goerr.V("conversationID", id),
		)
	}

	// Delete messages first, then the conversation document
	msgIter := docRef.Collection(collectionMessage).Documents(ctx)
	defer msgIter.Stop()
	for {
		snap, err := msgIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate messages",
				goerr.V("conversationID", id),
			)
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete message",
				goerr.V("conversationID", id),
			)
		}
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete conversation",
			goerr.V("conversationID", id),
		)
	}

	return nil
}

func (r *brainRepository) AppendMessage(ctx context.Context, convID types.ConversationID, msg *model.ChatMessage) error {
	convRef := r.client.Collection(collectionConversation).Doc(string(convID))

	if _, err := convRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return goerr.Wrap(repository.ErrNotFound, "conversation not found",
				goerr.V("conversationID", convID),
			)
		}
		return goerr.Wrap(err, "failed to get conversation",
			goerr.V("conversationID", convID),
		)
	}

	if _, err := convRef.Collection(collectionMessage).Doc(string(msg.ID)).Set(ctx, msg); err != nil {
		return goerr.Wrap(err, "failed to append message",
			goerr.V("conversationID", convID),
			goerr.V("messageID", msg.ID),
		)
	}

	if _, err := convRef.Update(ctx, []firestore.Update{
		{Path: "updated_at", Value: msg.CreatedAt},
	}); err != nil {
		return goerr.Wrap(err, "failed to touch conversation",
			goerr.V("conversationID", convID),
		)
	}

	return nil
}

func (r *brainRepository) ListMessages(ctx context.Context, convID types.ConversationID) ([]*model.ChatMessage, error) {
	convRef := r.client.Collection(collectionConversation).Doc(string(convID))

	if _, err := convRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "conversation not found",
				goerr.V("conversationID", convID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get conversation",
			goerr.V("conversationID", convID),
		)
	}

	iter := convRef.Collection(collectionMessage).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var messages []*model.ChatMessage
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list messages",
				goerr.V("conversationID", convID),
			)
		}

		var msg model.ChatMessage
		if err := snap.DataTo(&msg); err != nil {
			return nil, goerr.Wrap(err, "failed to decode message")
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}

// Preference operations

func (r *brainRepository) PutPreference(ctx context.Context, pref *model.Preference) error {
	docID, err := ToPreferenceDocID(pref.UserID, pref.Key)
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(collectionPreference).Doc(docID).Set(ctx, pref); err != nil {
		return goerr.Wrap(err, "failed to put preference",
			goerr.V("userID", pref.UserID),
			goerr.V("key", pref.Key),
		)
	}

	return nil
}

func (r *brainRepository) GetPreference(ctx context.Context, userID types.UserID, key string) (*model.Preference, error) {
	docID, err := ToPreferenceDocID(userID, key)
	if err != nil {
		return nil, err
	}

	snap, err := r.client.Collection(collectionPreference).Doc(docID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(repository.ErrNotFound, "preference not found",
				goerr.V("userID", userID),
				goerr.V("key", key),
			)
		}
		return nil, goerr.Wrap(err, "failed to get preference",
			goerr.V("userID", userID),
			goerr.V("key", key),
		)
	}

	var pref model.Preference
	if err := snap.DataTo(&pref); err != nil {
		return nil, goerr.Wrap(err, "failed to decode preference")
	}

	return &pref, nil
}

func (r *brainRepository) ListPreferences(ctx context.Context, userID types.UserID) ([]*model.Preference, error) {
	query := r.client.Collection(collectionPreference).Where("user_id", "==", string(userID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var prefs []*model.Preference
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list preferences",
				goerr.V("userID", userID),
			)
		}

		var pref model.Preference
		if err := snap.DataTo(&pref); err != nil {
			return nil, goerr.Wrap(err, "failed to decode preference")
		}
		prefs = append(prefs, &pref)
	}

	sort.Slice(prefs, func(i, j int) bool {
		return prefs[i].Key < prefs[j].Key
	})

	return prefs, nil
}
