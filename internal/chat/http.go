// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chat

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// # SSE Events

const (
	EventDelta = "delta"
	EventDone  = "done"
	EventError = "error"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the chat router, mounted at /api/chat.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.chat)
	return router
}

/*
Chat streams a model reply.

POST /api/chat

Response:
  - 200: text/event-stream of "delta" events ({"text": ...}) closed by "done",
    or by "error" when the upstream stream fails midway
  - 400: Invalid conversation
  - 503: No model provider configured
*/
func (handler *Handler) chat(writer http.ResponseWriter, request *http.Request) {
	if !handler.service.Available() {
		respond.Error(writer, request, ErrUnavailable)
		return
	}

	var input Request
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := validate.Struct(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	header := writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	writer.WriteHeader(http.StatusOK)

	stream := &eventWriter{writer: writer, controller: http.NewResponseController(writer)}

	err := handler.service.Stream(request.Context(), input.Messages, func(delta string) error {
		return stream.send(EventDelta, map[string]string{"text": delta})
	})
	if err != nil {
		_ = stream.send(EventError, map[string]string{"error": "Chat completion failed"})
		return
	}

	_ = stream.send(EventDone, struct{}{})
}

// eventWriter writes Server-Sent Events and flushes each one.
type eventWriter struct {
	writer     http.ResponseWriter
	controller *http.ResponseController
}

func (stream *eventWriter) send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(stream.writer, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return stream.controller.Flush()
}
