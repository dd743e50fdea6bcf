// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chat

import (
	"context"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/metrics"
)

type Service struct {
	completer    Completer
	systemPrompt string
	logger       *slog.Logger
}

// NewService creates the chat service. A nil completer disables chat.
func NewService(completer Completer, systemPrompt string, logger *slog.Logger) *Service {
	return &Service{
		completer:    completer,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Available reports whether a model provider is configured.
func (service *Service) Available() bool {
	return service.completer != nil
}

// Stream forwards the conversation to the model and emits the reply deltas.
func (service *Service) Stream(ctx context.Context, messages []Message, emit func(delta string) error) error {
	if !service.Available() {
		metrics.ChatRequestsTotal.WithLabelValues("unavailable").Inc()
		return ErrUnavailable
	}

	if err := service.completer.Stream(ctx, service.systemPrompt, messages, emit); err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("failed").Inc()
		service.logger.ErrorContext(ctx, "chat_stream_failed", slog.Any("error", err))
		return err
	}

	metrics.ChatRequestsTotal.WithLabelValues("completed").Inc()
	service.logger.InfoContext(ctx, "chat_completed", slog.Int("messages", len(messages)))
	return nil
}
