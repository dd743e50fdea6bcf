// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chat proxies conversations to a hosted language model and streams the
reply back to the browser as Server-Sent Events.

The conversation is stateless: clients send the whole message history with
every request, and the server prepends its system prompt.
*/
package chat

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// # Domain Types

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role   `json:"role"    validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Request is the body of POST /api/chat.
type Request struct {
	Messages []Message `json:"messages" validate:"required,min=1,max=50,dive"`
}

// # Contracts

// Completer streams a model completion. emit is called once per text delta,
// in order; returning an error from emit aborts the stream.
type Completer interface {
	Stream(ctx context.Context, systemPrompt string, messages []Message, emit func(delta string) error) error
}

// ErrUnavailable is returned when no model provider is configured.
var ErrUnavailable = apperr.ServiceUnavailable("Chat is not configured")

// # System Prompt

//go:embed prompt.md
var defaultSystemPrompt string

// LoadSystemPrompt reads the prompt at path, or returns the built-in prompt when
// path is empty.
func LoadSystemPrompt(path string) (string, error) {
	if path == "" {
		return defaultSystemPrompt, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("chat: read system prompt: %w", err)
	}
	return string(content), nil
}
