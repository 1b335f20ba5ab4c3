package http

import (
	"context"
	"encoding/json"
	"github.com/ATenderholt/rainbow-mailer/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
	"io"
	"net/http"
)

type EventHandler interface {
	Handle(ctx context.Context, payload json.RawMessage) error
}

// WebhookHandler accepts bucket notifications pushed by MinIO (or anything
// else posting S3-style event JSON) and runs them through the same handler
// used in Lambda.
type WebhookHandler struct {
	handler EventHandler
}

func NewWebhookHandler(handler EventHandler) WebhookHandler {
	return WebhookHandler{
		handler: handler,
	}
}

func (h WebhookHandler) Health(response http.ResponseWriter, _ *http.Request) {
	response.WriteHeader(http.StatusOK)
}

func (h WebhookHandler) Receive(response http.ResponseWriter, request *http.Request) {
	reqId := middleware.GetReqID(request.Context())

	body, err := io.ReadAll(request.Body)
	if err != nil {
		logger.Errorf("[%s] Unable to read request body: %v", reqId, err)
		http.Error(response, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.handler.Handle(request.Context(), body)
	switch {
	case err == nil:
		response.WriteHeader(http.StatusAccepted)
	case domain.IsExtractionError(err):
		logger.Warnf("[%s] Rejected notification: %v", reqId, err)
		http.Error(response, err.Error(), http.StatusBadRequest)
	default:
		logger.Errorf("[%s] Unable to deliver notification: %v", reqId, err)
		http.Error(response, err.Error(), http.StatusBadGateway)
	}
}
