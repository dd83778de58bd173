package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	errx "github.com/s2o-platform/dine-assist/internal/core/error"
)

// Key identifies a chat session by tenant and user.
type Key struct {
	TenantID int
	UserID   string
}

func (k Key) String() string {
	return fmt.Sprintf("%d_%s", k.TenantID, k.UserID)
}

// Session owns one bound chat model and the append-only conversation history
// exchanged with it. Sessions live for the process lifetime and are replaced
// wholesale, never repaired, when their backend is deemed failed.
type Session struct {
	backend string

	mu        sync.Mutex
	model     einomodel.ToolCallingChatModel
	history   []*schema.Message
	toolIDSeq int
}

func NewSession(backendName string, cm einomodel.ToolCallingChatModel) *Session {
	return &Session{backend: backendName, model: cm}
}

// Backend returns the pool entry this session is bound to.
func (s *Session) Backend() string {
	return s.backend
}

// Exchange sends the current system instructions, the accumulated history and
// the user message to the backend. On success both the user message and the
// reply are appended to the history.
func (s *Session) Exchange(ctx context.Context, system, user string) (*schema.Message, error) {
	return s.generate(ctx, system, schema.UserMessage(user))
}

// Resume feeds a tool result back into the same conversation as the second
// turn of an exchange.
func (s *Session) Resume(ctx context.Context, system string, toolMsg *schema.Message) (*schema.Message, error) {
	return s.generate(ctx, system, toolMsg)
}

func (s *Session) generate(ctx context.Context, system string, appended ...*schema.Message) (*schema.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]*schema.Message, 0, len(s.history)+len(appended)+1)
	msgs = append(msgs, schema.SystemMessage(system))
	msgs = append(msgs, s.history...)
	msgs = append(msgs, appended...)

	out, err := s.model.Generate(ctx, msgs)
	if err != nil {
		return nil, errx.WrapBackend(err)
	}
	if out == nil {
		return nil, errx.WrapBackend(errors.New("backend returned no message"))
	}

	// Some providers omit tool call IDs; synthesize them so the tool
	// response turn can reference its call.
	for i := range out.ToolCalls {
		if strings.TrimSpace(out.ToolCalls[i].ID) == "" {
			s.toolIDSeq++
			out.ToolCalls[i].ID = fmt.Sprintf("call_%d", s.toolIDSeq)
		}
	}

	s.history = append(s.history, appended...)
	s.history = append(s.history, out)
	return out, nil
}
