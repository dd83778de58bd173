package orchestrator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/s2o-platform/dine-assist/internal/assistant/backend"
	"github.com/s2o-platform/dine-assist/internal/assistant/fallback"
	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	"github.com/s2o-platform/dine-assist/internal/assistant/prompts"
	"github.com/s2o-platform/dine-assist/internal/assistant/tools"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// maxAttempts is the model-path budget per incoming message: one attempt
// with session reuse, one forced-fresh, then permanent fallback.
const maxAttempts = 2

var errPoolExhausted = errors.New("model pool exhausted")

// Orchestrator composes session acquisition, the model exchange, tool
// dispatch and the deterministic fallback behind a single Chat entry point.
// Nothing above it ever sees an error: every failure is absorbed into a
// textual reply.
type Orchestrator struct {
	sessions        *backend.SessionManager
	dispatcher      *tools.Dispatcher
	fallback        *fallback.Responder
	exchangeTimeout time.Duration
}

func New(sessions *backend.SessionManager, dispatcher *tools.Dispatcher, responder *fallback.Responder, cfg model.BackendConfig) *Orchestrator {
	return &Orchestrator{
		sessions:        sessions,
		dispatcher:      dispatcher,
		fallback:        responder,
		exchangeTimeout: cfg.ExchangeTimeoutDuration(),
	}
}

// Chat handles one customer message and always returns a non-empty reply.
func (o *Orchestrator) Chat(ctx context.Context, message, userID string, reqCtx model.Context) string {
	key := backend.Key{TenantID: reqCtx.TenantID, UserID: userID}
	logx.Info().Str("session_key", key.String()).Str("message", message).Msg("customer message")

	for attempt := 0; attempt < maxAttempts; attempt++ {
		reply, err := o.tryModelPath(ctx, key, message, reqCtx, attempt > 0)
		if err != nil {
			logx.Warn().Err(err).
				Int("attempt", attempt).
				Str("session_key", key.String()).
				Msg("model path attempt failed")
			if errors.Is(err, errPoolExhausted) {
				// No backend can be instantiated at all; retrying would
				// walk the same pool again.
				break
			}
			continue
		}
		if reply != "" {
			return reply
		}
		logx.Warn().Int("attempt", attempt).Msg("model reply had no usable text")
	}

	logx.Warn().Str("session_key", key.String()).Msg("fallback activated")
	return o.fallback.Respond(ctx, message, reqCtx.TenantID, reqCtx)
}

// tryModelPath runs one full attempt: acquire a session, exchange the
// message, and if the reply carries a tool call, dispatch it and feed the
// result back into the same session for the final text.
func (o *Orchestrator) tryModelPath(ctx context.Context, key backend.Key, message string, reqCtx model.Context, forceNew bool) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, o.exchangeTimeout)
	defer cancel()

	sess := o.sessions.GetOrCreate(cctx, key, forceNew)
	if sess == nil {
		return "", errPoolExhausted
	}

	system, err := prompts.RenderSystem(cctx, reqCtx)
	if err != nil {
		return "", err
	}

	out, err := sess.Exchange(cctx, system, "Khách: "+message)
	if err != nil {
		return "", err
	}

	if len(out.ToolCalls) > 0 {
		// A backend emits at most one tool invocation per turn.
		call := out.ToolCalls[0]
		result := o.dispatcher.Invoke(cctx, call, reqCtx.TenantID)
		payload, err := result.Payload()
		if err != nil {
			return "", err
		}
		out, err = sess.Resume(cctx, system,
			schema.ToolMessage(payload, call.ID, schema.WithToolName(call.Function.Name)))
		if err != nil {
			return "", err
		}
	}

	return strings.TrimSpace(out.Content), nil
}
