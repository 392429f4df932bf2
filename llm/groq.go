package llm

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the outbound boundary to the hosted language model. The chat
// feature is a passthrough: one user message in, one generated reply out.
type Client interface {
	Chat(ctx context.Context, message string) (string, error)
}

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"
const defaultGroqModel = "llama-3.3-70b-versatile"

// GroqClient talks to Groq's OpenAI-compatible chat completion API with the
// fixed E-ASHA system prompt.
type GroqClient struct {
	client *openai.Client
	model  string
}

// NewGroqClient reads GROQ_API_KEY and optional GROQ_BASE_URL / GROQ_MODEL
// overrides from the environment.
func NewGroqClient() *GroqClient {
	config := openai.DefaultConfig(os.Getenv("GROQ_API_KEY"))
	config.BaseURL = defaultGroqBaseURL
	if baseURL := os.Getenv("GROQ_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}

	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultGroqModel
	}

	return &GroqClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Chat sends the system prompt and the user message and returns the
// generated text verbatim.
func (c *GroqClient) Chat(ctx context.Context, message string) (string, error) {
	if c.client == nil {
		return "", errors.New("groq client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
