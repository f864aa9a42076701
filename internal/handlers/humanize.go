package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"humanize-backend/internal/middleware"
	"humanize-backend/internal/models"
	"humanize-backend/internal/services"
)

type humanizer interface {
	Humanize(ctx context.Context, requestID string, req models.HumanizeRequest) (string, error)
}

type HumanizeHandler struct {
	service humanizer
}

func NewHumanizeHandler(service humanizer) *HumanizeHandler {
	return &HumanizeHandler{service: service}
}

// Humanize handles POST rewrite requests.
func (h *HumanizeHandler) Humanize(w http.ResponseWriter, r *http.Request) {
	var req models.HumanizeRequest
	if err := decodeJSONBody(r.Body, &req); err != nil {
		handleServiceError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	out, err := h.service.Humanize(r.Context(), middleware.GetRequestID(r.Context()), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.HumanizeResponse{HumanizedText: out})
}

// Shared helpers

// decodeJSONBody decodes exactly one JSON value from body. Anything other
// than whitespace after it is an error.
func decodeJSONBody(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// handleServiceError is the single place where service errors become HTTP
// statuses. Upstream bodies never reach the client.
func handleServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *services.ValidationError
		configErr     *services.ConfigurationError
		upstreamErr   *services.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResp(validationErr.Message))
	case errors.As(err, &configErr):
		writeJSON(w, http.StatusInternalServerError, errorResp(configErr.Message))
	case errors.As(err, &upstreamErr):
		switch upstreamErr.StatusCode {
		case http.StatusTooManyRequests:
			writeJSON(w, http.StatusTooManyRequests, errorResp("Rate limit exceeded. Please try again in a moment."))
		case http.StatusPaymentRequired:
			writeJSON(w, http.StatusPaymentRequired, errorResp("AI credits exhausted. Please add credits to continue."))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResp("AI service error"))
		}
	case errors.Is(err, services.ErrEmptyCompletion):
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to generate humanized text"))
	default:
		log.Printf("Error in humanize request: %v", err)
		msg := "Unknown error"
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, errorResp(msg))
	}
}
