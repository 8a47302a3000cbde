package lambda

import (
	"context"
	"encoding/json"
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
)

// AlertRunner runs one alert evaluation and publishes the result.
type AlertRunner interface {
	Run(ctx context.Context, now time.Time) (entity.AlertResult, *entity.AlertReport, error)
}

// Handler adapts the alert use case to the Lambda runtime.
type Handler struct {
	runner  AlertRunner
	console types.ConsoleInterface
	now     func() time.Time
}

func NewHandler(runner AlertRunner, console types.ConsoleInterface) *Handler {
	return &Handler{runner: runner, console: console, now: time.Now}
}

// Handle is invoked by the scheduler. The event payload is accepted but not
// used. Errors are returned unchanged so the invocation is marked as failed.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (entity.AlertResult, error) {
	result, _, err := h.runner.Run(ctx, h.now().UTC())
	if err != nil {
		h.console.LogError("Reserved instance check failed: %v", err)
		return entity.AlertResult{}, err
	}
	return result, nil
}
