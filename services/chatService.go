package services

import (
	"EAsha/llm"
	"context"
	"time"
)

// ChatTimeout bounds the outbound completion call so a hung upstream never
// blocks a request indefinitely.
const ChatTimeout = 30 * time.Second

// ChatService is the passthrough to the hosted language model. It owns no
// conversation state and applies no logic beyond the timeout.
type ChatService struct {
	client llm.Client
}

func NewChatService(client llm.Client) *ChatService {
	return &ChatService{client: client}
}

// Reply forwards the message and returns the generated text verbatim.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ChatTimeout)
	defer cancel()
	return s.client.Chat(ctx, message)
}
