package services

import (
	"context"
	"time"

	"pomoplanner.com/pomoplanner/internal/llm"
	"pomoplanner.com/pomoplanner/internal/prompt"
)

// Completer produces an assistant reply for a conversation. It must
// not fail; implementations fall back to a canned reply instead.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) string
}

type ChatService struct {
	store     TaskStore
	completer Completer
	now       func() time.Time
}

func NewChatService(store TaskStore, completer Completer) *ChatService {
	return &ChatService{
		store:     store,
		completer: completer,
		now:       time.Now,
	}
}

// Respond answers a schedule question. "Today" is the server's current
// date, never the client's.
func (s *ChatService) Respond(ctx context.Context, userID, message string) (string, error) {
	tasks, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	today := s.now().Format("2006-01-02")
	system := prompt.Build(today, tasks)

	reply := s.completer.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: message},
	})
	return reply, nil
}
