package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"reboundai/backend/internal/config"
	"reboundai/backend/internal/session"
)

// ChatRequest carries one upstream completion call.
type ChatRequest struct {
	SystemPrompt string
	Messages     []session.Message
	Temperature  float64
	MaxTokens    int
}

// AIClient is the outbound boundary to the model provider.
type AIClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

type OpenAIChatClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIChatClient(cfg config.Config) (*OpenAIChatClient, error) {
	apiKey := strings.TrimSpace(cfg.OpenAIAPIKey)
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not configured")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(cfg.OpenAIBaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	timeout := time.Duration(cfg.AITimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	model := strings.TrimSpace(cfg.OpenAIModel)
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIChatClient{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *OpenAIChatClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if prompt := strings.TrimSpace(req.SystemPrompt); prompt != "" {
		messages = append(messages, openai.SystemMessage(prompt))
	}
	for _, msg := range req.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		if msg.Role == session.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(content))
		} else {
			messages = append(messages, openai.UserMessage(content))
		}
	}
	if len(messages) == 0 {
		return "", errors.New("completion request has no messages")
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// MockAIClient answers locally so the API can run without a provider key.
type MockAIClient struct{}

func (MockAIClient) Complete(_ context.Context, req ChatRequest) (string, error) {
	last := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == session.RoleUser {
			last = strings.TrimSpace(req.Messages[i].Content)
			break
		}
	}
	if last == "" {
		return "I'm here. Tell me what's on your mind.", nil
	}
	return "I hear you. When you say \"" + truncate(last, 80) + "\", what feels heaviest about it?", nil
}
