package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	"github.com/s2o-platform/dine-assist/internal/assistant/tools"
)

//go:embed template/system_prompt.txt
var systemPromptTemplate string

// Defaults used when the caller's context omits restaurant metadata.
const (
	DefaultRestaurantName = "S2O Restaurant"
	DefaultAddress        = "Đang cập nhật"
)

// RenderSystem renders the system instructions with the per-request
// restaurant context via the Eino prompt component (Go template). The result
// is recomputed on every exchange and never stored in session history.
func RenderSystem(ctx context.Context, reqCtx model.Context) (string, error) {
	name := strings.TrimSpace(reqCtx.RestaurantName)
	if name == "" {
		name = DefaultRestaurantName
	}
	addr := strings.TrimSpace(reqCtx.Address)
	if addr == "" {
		addr = DefaultAddress
	}

	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(systemPromptTemplate),
	)
	vars := map[string]any{
		"RestaurantName":  name,
		"Address":         addr,
		"MenuTool":        tools.ToolGetMenuFiltered,
		"OrderStatusTool": tools.ToolCheckOrderStatus,
		"OrderIntentTool": tools.ToolPlaceOrderIntent,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("system prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("system prompt render: empty result")
	}
	return msgs[0].Content, nil
}
