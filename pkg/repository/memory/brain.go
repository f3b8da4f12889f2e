package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/repository"
)

// Note operations

func (r *brainRepository) CreateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "note already exists",
			goerr.V("noteID", note.ID),
		)
	}
	r.notes[note.ID] = copyNote(note)

	return nil
}

func (r *brainRepository) GetNote(ctx context.Context, id types.NoteID) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "note not found",
			goerr.V("noteID", id),
		)
	}

	return copyNote(note), nil
}

func (r *brainRepository) ListNotes(ctx context.Context, userID types.UserID) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var notes []*model.Note
	for _, note := range r.notes {
		if note.UserID == userID {
			notes = append(notes, copyNote(note))
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

func (r *brainRepository) UpdateNote(ctx context.Context, note *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.ID]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "note not found",
			goerr.V("noteID", note.ID),
		)
	}
	r.notes[note.ID] = copyNote(note)

	return nil
}

func (r *brainRepository) DeleteNote(ctx context.Context, id types.NoteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "note not found",
			goerr.V("noteID", id),
		)
	}
	delete(r.notes, id)

	return nil
}

// Achievement operations

func (r *brainRepository) CreateAchievement(ctx context.Context, achievement *model.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.achievements[achievement.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "achievement already exists",
			goerr.V("achievementID", achievement.ID),
		)
	}
	r.achievements[achievement.ID] = copyAchievement(achievement)

	return nil
}

func (r *brainRepository) GetAchievement(ctx context.Context, id types.AchievementID) (*model.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	achievement, exists := r.achievements[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "achievement not found",
			goerr.V("achievementID", id),
		)
	}

	return copyAchievement(achievement), nil
}

func (r *brainRepository) ListAchievements(ctx context.Context, userID types.UserID) ([]*model.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var achievements []*model.Achievement
	for _, achievement := range r.achievements {
		if achievement.UserID == userID {
			achievements = append(achievements, copyAchievement(achievement))
		}
	}

	sort.Slice(achievements, func(i, j int) bool {
		return achievements[i].AchievedAt.After(achievements[j].AchievedAt)
	})

	return achievements, nil
}

func (r *brainRepository) DeleteAchievement(ctx context.Context, id types.AchievementID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.achievements[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "achievement not found",
			goerr.V("achievementID", id),
		)
	}
	delete(r.achievements, id)

	return nil
}

// Activity operations

func (r *brainRepository) RecordActivity(ctx context.Context, activity *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities[activity.UserID] = append(r.activities[activity.UserID], copyActivity(activity))

	return nil
}

func (r *brainRepository) ListActivities(ctx context.Context, userID types.UserID, limit int) ([]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activities []*model.Activity
	for _, activity := range r.activities[userID] {
		activities = append(activities, copyActivity(activity))
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
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[conv.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "conversation already exists",
			goerr.V("conversationID", conv.ID),
		)
	}
	r.conversations[conv.ID] = &conversationData{
		conv: copyConversation(conv),
	}

	return nil
}

func (r *brainRepository) GetConversation(ctx context.Context, id types.ConversationID) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.conversations[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "conversation not found",
			goerr.V("conversationID", id),
		)
	}

	return copyConversation(data.conv), nil
}

func (r *brainRepository) ListConversations(ctx context.Context, userID types.UserID) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var convs []*model.Conversation
	for _, data := range r.conversations {
		if data.conv.UserID == userID {
			convs = append(convs, copyConversation(data.conv))
		}
	}

	sort.Slice(convs, func(i, j int) bool {
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})

	return convs, nil
}

func (r *brainRepository) DeleteConversation(ctx context.Context, id types.ConversationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "conversation not found",
			goerr.V("conversationID", id),
		)
	}
	delete(r.conversations, id)

	return nil
}

func (r *brainRepository) AppendMessage(ctx context.Context, convID types.ConversationID, msg *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.conversations[convID]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "conversation not found",
			goerr.V("conversationID", convID),
		)
	}
	data.messages = append(data.messages, copyMessage(msg))
	data.conv.UpdatedAt = msg.CreatedAt

	return nil
}

func (r *brainRepository) ListMessages(ctx context.Context, convID types.ConversationID) ([]*model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.conversations[convID]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "conversation not found",
			goerr.V("conversationID", convID),
		)
	}

	messages := make([]*model.ChatMessage, 0, len(data.messages))
	for _, msg := range data.messages {
		messages = append(messages, copyMessage(msg))
	}

	return messages, nil
}

// Preference operations

func (r *brainRepository) PutPreference(ctx context.Context, pref *model.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.preferences[pref.UserID]; !exists {
		r.preferences[pref.UserID] = make(map[string]*model.Preference)
	}
	r.preferences[pref.UserID][pref.Key] = copyPreference(pref)

	return nil
}

func (r *brainRepository) GetPreference(ctx context.Context, userID types.UserID, key string) (*model.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, exists := r.preferences[userID][key]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "preference not found",
			goerr.V("userID", userID),
			goerr.V("key", key),
		)
	}

	return copyPreference(pref), nil
}

func (r *brainRepository) ListPreferences(ctx context.Context, userID types.UserID) ([]*model.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var prefs []*model.Preference
	for _, pref := range r.preferences[userID] {
		prefs = append(prefs, copyPreference(pref))
	}

	sort.Slice(prefs, func(i, j int) bool {
		return prefs[i].Key < prefs[j].Key
	})

	return prefs, nil
}

// copy helpers keep callers from mutating stored entities

func copyNote(src *model.Note) *model.Note {
	dst := *src
	dst.Tags = append([]string(nil), src.Tags...)
	return &dst
}

func copyAchievement(src *model.Achievement) *model.Achievement {
	dst := *src
	return &dst
}

func copyActivity(src *model.Activity) *model.Activity {
	dst := *src
	return &dst
}

func copyConversation(src *model.Conversation) *model.Conversation {
	dst := *src
	return &dst
}

func copyMessage(src *model.ChatMessage) *model.ChatMessage {
	dst := *src
	return &dst
}

func copyPreference(src *model.Preference) *model.Preference {
	dst := *src
	return &dst
}
