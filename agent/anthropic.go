package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tailored-agentic-units/planner/core/protocol"
)

type anthropicAgent struct {
	client anthropic.Client
	model  string
}

// New creates an Agent backed by the Anthropic Messages API. SDK retries are
// disabled: a failed call is reported to the caller as-is.
func New(cfg *Config, opts ...option.RequestOption) (Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &anthropicAgent{
		client: anthropic.NewClient(clientOpts...),
		model:  cfg.Model,
	}, nil
}

func (a *anthropicAgent) Chat(ctx context.Context, req Request) (string, error) {
	params, err := a.params(req)
	if err != nil {
		return "", err
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

func (a *anthropicAgent) Stream(ctx context.Context, req Request, fn FragmentHandler) (string, error) {
	params, err := a.params(req)
	if err != nil {
		return "", err
	}

	stream := a.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	var b strings.Builder
	for stream.Next() {
		event, ok := stream.Current().AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		delta, ok := event.Delta.AsAny().(anthropic.TextDelta)
		if !ok || delta.Text == "" {
			continue
		}
		b.WriteString(delta.Text)
		if fn != nil {
			fn(delta.Text)
		}
	}

	if err := stream.Err(); err != nil {
		if b.Len() > 0 {
			return b.String(), fmt.Errorf("%w after %d bytes: %w", ErrStreamInterrupted, b.Len(), classify(err))
		}
		return "", classify(err)
	}
	return b.String(), nil
}

func (a *anthropicAgent) params(req Request) (anthropic.MessageNewParams, error) {
	if err := req.Validate(); err != nil {
		return anthropic.MessageNewParams{}, err
	}

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == protocol.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  messages,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	return params, nil
}
