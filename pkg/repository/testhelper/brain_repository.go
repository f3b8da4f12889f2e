package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/repository"
)

// TestAll runs all test cases for BrainRepository
// This is the main entry point for testing any BrainRepository implementation
func TestAll(t *testing.T, repo interfaces.BrainRepository) {
	t.Run("NoteCRUD", func(t *testing.T) {
		TestNoteCRUD(t, repo)
	})
	t.Run("NoteIsolationByUser", func(t *testing.T) {
		TestNoteIsolationByUser(t, repo)
	})
	t.Run("AchievementCRUD", func(t *testing.T) {
		TestAchievementCRUD(t, repo)
	})
	t.Run("ActivityRecordAndList", func(t *testing.T) {
		TestActivityRecordAndList(t, repo)
	})
	t.Run("ConversationAndMessages", func(t *testing.T) {
		TestConversationAndMessages(t, repo)
	})
	t.Run("PreferenceUpsert", func(t *testing.T) {
		TestPreferenceUpsert(t, repo)
	})
}

func newUserID() types.UserID {
	return types.UserID(fmt.Sprintf("user-%s", uuid.New().String()[:8]))
}

// TestNoteCRUD tests basic CRUD operations for Note
func TestNoteCRUD(t *testing.T, repo interfaces.BrainRepository) {
	ctx := context.Background()
	userID := newUserID()

	now := time.Now()
	note := &model.Note{
		ID:        types.NewNoteID(),
		UserID:    userID,
		Title:     "weekly review",
		Content:   "ship the report",
		Tags:      []string{"review", "work"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	gt.NoError(t, repo.CreateNote(ctx, note))

	retrieved, err := repo.GetNote(ctx, note.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.ID).Equal(note.ID)
	gt.V(t, retrieved.UserID).Equal(note.UserID)
	gt.V(t, retrieved.Title).Equal(note.Title)
	gt.V(t, retrieved.Content).Equal(note.Content)
	gt.A(t, retrieved.Tags).Length(2)

	// Creating the same note twice fails
	err = repo.CreateNote(ctx, note)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrAlreadyExists)).True()

	// Update
	note.Title = "weekly review (done)"
	note.UpdatedAt = time.Now()
	gt.NoError(t, repo.UpdateNote(ctx, note))

	retrieved, err = repo.GetNote(ctx, note.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Title).Equal("weekly review (done)")

	// List
	notes, err := repo.ListNotes(ctx, userID)
	gt.NoError(t, err)
	gt.A(t, notes).Length(1)

	// Delete
	gt.NoError(t, repo.DeleteNote(ctx, note.ID))

	_, err = repo.GetNote(ctx, note.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	// Deleting again fails with NotFound
	err = repo.DeleteNote(ctx, note.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestNoteIsolationByUser verifies that listing never leaks other users' notes
func TestNoteIsolationByUser(t *testing.T, repo interfaces.BrainRepository) {
	ctx := context.Background()
	alice := newUserID()
	bob := newUserID()

	now := time.Now()
	for i, userID := range []types.UserID{alice, alice, bob} {
		note := &model.Note{
			ID:        types.NewNoteID(),
			UserID:    userID,
			Title:     fmt.Sprintf("note-%d", i),
			CreatedAt: now.Add(time.Duration(i) * time.Second),
			UpdatedAt: now,
		}
		gt.NoError(t, repo.CreateNote(ctx, note))
	}

	aliceNotes, err := repo.ListNotes(ctx, alice)
	gt.NoError(t, err)
	gt.A(t, aliceNotes).Length(2)
	for _, note := range aliceNotes {
		gt.V(t, note.UserID).Equal(alice)
	}

	bobNotes, err := repo.ListNotes(ctx, bob)
	gt.NoError(t, err)
	gt.A(t, bobNotes).Length(1)
}

// TestAchievementCRUD tests basic CRUD operations for Achievement
func TestAchievementCRUD(t *testing.T, repo interfaces.BrainRepository) {
	ctx := context.Background()
	userID := newUserID()

	achievement := &model.Achievement{
		ID:          types.NewAchievementID(),
		UserID:      userID,
		Title:       "100 day streak",
		Description: "wrote a note every day",
		AchievedAt:  time.Now(),
		CreatedAt:   time.Now(),
	}

	gt.NoError(t, repo.CreateAchievement(ctx, achievement))

	retrieved, err := repo.GetAchievement(ctx, achievement.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Title).Equal(achievement.Title)
	gt.V(t, retrieved.UserID).Equal(userID)

	achievements, err := repo.ListAchievements(ctx, userID)
	gt.NoError(t, err)
	gt.A(t, achievements).Length(1)

	gt.NoError(t, repo.DeleteAchievement(ctx, achievement.ID))

	_, err = repo.GetAchievement(ctx, achievement.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestActivityRecordAndList verifies ordering and limit of activity listing
func TestActivityRecordAndList(t *testing.T, repo interfaces.BrainRepository) {
	ctx := context.Background()
	userID := newUserID()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		activity := &model.Activity{
			ID:         types.NewActivityID(),
			UserID:     userID,
			Kind:       "note.updated",
			Detail:     fmt.Sprintf("note-%d", i),
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}
		gt.NoError(t, repo.RecordActivity(ctx, activity))
	}

	activities, err := repo.ListActivities(ctx, userID, 0)
	gt.NoError(t, err)
	gt.A(t, activities).Length(5)

	// Most recent first
	gt.V(t, activities[0].Detail).Equal("note-4")

	limited, err := repo.ListActivities(ctx, userID, 3)
	gt.NoError(t, err)
	gt.A(t, limited).Length(3)
	gt.V(t, limited[0].Detail).Equal("note-4")
}

// TestConversationAndMessages tests conversation lifecycle with messages
func TestConversationAndMessages(t *testing.T, repo interfaces.BrainRepository) {
	ctx := context.Background()
	userID := newUserID()

	now := time.Now()
	conv := &model.Conversation{
		ID:        types.NewConversationID(),
		UserID:    userID,
		Title:     "trip planning",
		CreatedAt: now,
		UpdatedAt: now,
	}
	gt.NoError(t, repo.CreateConversation(ctx, conv))

	for i, role := range []types.MessageRole{types.RoleUser, types.RoleAssistant} {
		msg := &model.ChatMessage{
			ID:        types.NewMessageID(),
			Role:      role,
			Content:   fmt.Sprintf("message-%d", i),
			CreatedAt: now.Add(time.Duration(i+1) * time.Second),
		}
		gt.NoError(t, repo.AppendMessage(ctx, conv.ID, msg))
	}

	messages, err := repo.ListMessages(ctx, conv.ID)
	gt.NoError(t, err)
	gt.A(t, messages).Length(2)
	gt.V(t, messages[0].Role).Equal(types.RoleUser)
	gt.V(t, messages[1].Role).Equal(types.RoleAssistant)

	// Appending touched the conversation
	retrieved, err := repo.GetConversation(ctx, conv.ID)
	gt.NoError(t, err)
	gt.B(t, retrieved.UpdatedAt.After(conv.CreatedAt)).True()

	// Appending to a missing conversation fails
	err = repo.AppendMessage(ctx, types.NewConversationID(), &model.ChatMessage{
		ID:        types.NewMessageID(),
		Role:      types.RoleUser,
		Content:   "nobody home",
		CreatedAt: now,
	})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	gt.NoError(t, repo.DeleteConversation(ctx, conv.ID))

	_, err = repo.GetConversation(ctx, conv.ID)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

// TestPreferenceUpsert tests preference put/get/list semantics
func TestPreferenceUpsert(t *testing.T, repo interfaces.BrainRepository) {
	ctx := context.Background()
	userID := newUserID()

	pref := &model.Preference{
		UserID:    userID,
		Key:       "theme",
		Value:     "dark",
		UpdatedAt: time.Now(),
	}
	gt.NoError(t, repo.PutPreference(ctx, pref))

	// Upsert overwrites
	pref.Value = "light"
	pref.UpdatedAt = time.Now()
	gt.NoError(t, repo.PutPreference(ctx, pref))

	retrieved, err := repo.GetPreference(ctx, userID, "theme")
	gt.NoError(t, err)
	gt.V(t, retrieved.Value).Equal("light")

	gt.NoError(t, repo.PutPreference(ctx, &model.Preference{
		UserID:    userID,
		Key:       "editor",
		Value:     "vim",
		UpdatedAt: time.Now(),
	}))

	prefs, err := repo.ListPreferences(ctx, userID)
	gt.NoError(t, err)
	gt.A(t, prefs).Length(2)
	gt.V(t, prefs[0].Key).Equal("editor")
	gt.V(t, prefs[1].Key).Equal("theme")

	_, err = repo.GetPreference(ctx, userID, "missing")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}
