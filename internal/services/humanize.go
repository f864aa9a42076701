package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"humanize-backend/internal/events"
	"humanize-backend/internal/models"
	"humanize-backend/internal/styles"
)

const publishTimeout = 2 * time.Second

// HumanizeService turns one rewrite request into exactly one completion call.
// It holds no per-request state and is safe for concurrent use.
type HumanizeService struct {
	completer Completer
	publisher events.Publisher
}

// NewHumanizeService wires the service. A nil completer behaves like an
// unconfigured one; a nil publisher disables activity events.
func NewHumanizeService(completer Completer, publisher events.Publisher) *HumanizeService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &HumanizeService{
		completer: completer,
		publisher: publisher,
	}
}

// Humanize validates req, selects the style prompt, and returns the rewritten
// text. Errors are one of *ValidationError, *ConfigurationError,
// *UpstreamError, ErrEmptyCompletion, or an unexpected transport error.
func (s *HumanizeService) Humanize(ctx context.Context, requestID string, req models.HumanizeRequest) (string, error) {
	start := time.Now()

	out, err := s.humanize(ctx, req)

	s.publish(ctx, requestID, req, out, err, time.Since(start))
	return out, err
}

func (s *HumanizeService) humanize(ctx context.Context, req models.HumanizeRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", &ValidationError{Message: "Text is required"}
	}

	if s.completer == nil || !s.completer.Configured() {
		log.Println("AI service credential is not configured")
		return "", &ConfigurationError{Message: "AI service not configured"}
	}

	systemPrompt := styles.Prompt(req.Style)

	log.Printf("Processing text transformation with style: %s", req.Style)

	out, err := s.completer.Complete(ctx, systemPrompt, req.Text)
	if err != nil {
		var upstreamErr *UpstreamError
		switch {
		case errors.As(err, &upstreamErr):
			log.Printf("AI gateway error: %d %s", upstreamErr.StatusCode, upstreamErr.Body)
		case errors.Is(err, ErrNotConfigured):
			log.Println("AI service credential is not configured")
			return "", &ConfigurationError{Message: "AI service not configured"}
		case errors.Is(err, ErrEmptyCompletion):
			log.Println("No content in AI response")
		default:
			log.Printf("Error in humanize request: %v", err)
		}
		return "", err
	}

	log.Println("Text humanization successful")
	return out, nil
}

func (s *HumanizeService) publish(ctx context.Context, requestID string, req models.HumanizeRequest, out string, err error, elapsed time.Duration) {
	event := models.RewriteEvent{
		ID:          uuid.New(),
		RequestID:   requestID,
		Style:       string(styles.Resolve(req.Style)),
		Status:      models.EventStatusSucceeded,
		InputChars:  utf8.RuneCountInString(req.Text),
		OutputChars: utf8.RuneCountInString(out),
		DurationMS:  elapsed.Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if err != nil {
		event.Status = models.EventStatusFailed
		event.ErrorKind = ErrorKind(err)
	}

	// The client may already be gone; the event still goes out.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if pubErr := s.publisher.Publish(pubCtx, event); pubErr != nil {
		log.Printf("Failed to publish rewrite event: %v", pubErr)
	}
}
