package memory

import (
	"sync"

	"github.com/secondbrain-app/secondbrain/pkg/domain/interfaces"
	"github.com/secondbrain-app/secondbrain/pkg/domain/model"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
)

// New creates a new in-memory repository
func New() interfaces.BrainRepository {
	return &brainRepository{
		notes:         make(map[types.NoteID]*model.Note),
		achievements:  make(map[types.AchievementID]*model.Achievement),
		activities:    make(map[types.UserID][]*model.Activity),
		conversations: make(map[types.ConversationID]*conversationData),
		preferences:   make(map[types.UserID]map[string]*model.Preference),
	}
}

type conversationData struct {
	conv     *model.Conversation
	messages []*model.ChatMessage
}

type brainRepository struct {
	mu            sync.RWMutex
	notes         map[types.NoteID]*model.Note
	achievements  map[types.AchievementID]*model.Achievement
	activities    map[types.UserID][]*model.Activity
	conversations map[types.ConversationID]*conversationData
	preferences   map[types.UserID]map[string]*model.Preference
}
