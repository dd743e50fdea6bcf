// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chat

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAICompleter implements [Completer] with the OpenAI Chat Completions API.
type OpenAICompleter struct {
	client openai.Client
	model  string
}

// NewOpenAICompleter creates a completer for model. Extra request options
// (base URL, HTTP client) are passed through to the client.
func NewOpenAICompleter(apiKey, model string, opts ...option.RequestOption) *OpenAICompleter {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &OpenAICompleter{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Stream implements [Completer].
func (completer *OpenAICompleter) Stream(ctx context.Context, systemPrompt string, messages []Message, emit func(delta string) error) error {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(completer.model),
		Messages: toOpenAIMessages(systemPrompt, messages),
	}

	stream := completer.client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}

		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}

		if err := emit(delta); err != nil {
			return err
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("chat: openai stream: %w", err)
	}
	return nil
}

func toOpenAIMessages(systemPrompt string, messages []Message) []openai.ChatCompletionMessageParamUnion {
	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if systemPrompt != "" {
		converted = append(converted, openai.SystemMessage(systemPrompt))
	}

	for _, message := range messages {
		switch message.Role {
		case RoleAssistant:
			converted = append(converted, openai.AssistantMessage(message.Content))
		default:
			converted = append(converted, openai.UserMessage(message.Content))
		}
	}
	return converted
}
