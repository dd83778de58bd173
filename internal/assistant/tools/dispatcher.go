package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/s2o-platform/dine-assist/internal/assistant/catalog"
	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	errx "github.com/s2o-platform/dine-assist/internal/core/error"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// MenuFetcher reads a tenant's menu.
type MenuFetcher interface {
	Fetch(ctx context.Context, tenantID int) ([]model.MenuItem, error)
}

// OrderFetcher reads an order payload by id.
type OrderFetcher interface {
	Fetch(ctx context.Context, orderID int) (json.RawMessage, error)
}

// Dispatcher maps a structured tool call onto the catalog and order
// operations and shapes the result fed back to the model. It never mutates
// any persisted order; placing an order is advisory text only.
type Dispatcher struct {
	menu    MenuFetcher
	orders  OrderFetcher
	filters *catalog.FilterEngine
}

func NewDispatcher(menu MenuFetcher, orders OrderFetcher, filters *catalog.FilterEngine) *Dispatcher {
	return &Dispatcher{menu: menu, orders: orders, filters: filters}
}

// Invoke executes one tool call for the tenant. Every branch degrades to a
// structured result; it never returns an error to the caller.
func (d *Dispatcher) Invoke(ctx context.Context, call schema.ToolCall, tenantID int) model.ToolResult {
	args := parseArgs(call.Function.Arguments)

	logx.Debug().
		Str("tool", call.Function.Name).
		Str("arguments", call.Function.Arguments).
		Int("tenant_id", tenantID).
		Msg("dispatching tool call")

	switch call.Function.Name {
	case ToolGetMenuFiltered, ToolGetMenu:
		return d.menuFiltered(ctx, args, tenantID)
	case ToolCheckOrderStatus:
		return d.orderStatus(ctx, args)
	case ToolPlaceOrderIntent:
		return d.orderIntent(ctx, args, tenantID)
	default:
		logx.Warn().Str("tool", call.Function.Name).Msg("unknown tool call ignored")
		return model.ToolResult{
			Status:  model.ResultError,
			Error:   "unknown_tool",
			Message: fmt.Sprintf("Tool %q không được hỗ trợ.", call.Function.Name),
		}
	}
}

func (d *Dispatcher) menuFiltered(ctx context.Context, args map[string]any, tenantID int) model.ToolResult {
	ft := model.FilterType(argString(args, "filter_type"))
	if ft == "" {
		// Reduced schemas declare a category argument instead.
		ft = model.FilterType(argString(args, "category"))
	}
	if ft == "" {
		ft = model.FilterAll
	}

	items, err := d.menu.Fetch(ctx, tenantID)
	if err != nil {
		items = nil
	}
	filtered := d.filters.Filter(items, ft)
	if len(filtered) == 0 {
		return model.ToolResult{
			Status:  model.ResultEmpty,
			Message: fmt.Sprintf("Không có món nào thuộc nhóm '%s'.", ft),
		}
	}
	return model.ToolResult{Status: model.ResultSuccess, Filter: ft, Items: filtered}
}

func (d *Dispatcher) orderStatus(ctx context.Context, args map[string]any) model.ToolResult {
	orderID := argInt(args, "order_id")
	raw, err := d.orders.Fetch(ctx, orderID)
	switch {
	case err == nil:
		return model.ToolResult{Order: raw}
	case errors.Is(err, errx.ErrOrderNotFound):
		return model.ToolResult{Status: model.ResultNotFound}
	default:
		return model.ToolResult{Error: "connection_error"}
	}
}

func (d *Dispatcher) orderIntent(ctx context.Context, args map[string]any, tenantID int) model.ToolResult {
	itemName := argString(args, "item_name")

	items, err := d.menu.Fetch(ctx, tenantID)
	if err != nil {
		items = nil
	}
	item := d.filters.FindByName(items, itemName)
	if item == nil {
		return model.ToolResult{
			Status:  model.ResultNotFound,
			Message: fmt.Sprintf("Không tìm thấy món %s", itemName),
		}
	}
	if !item.Status.Orderable() {
		return model.ToolResult{
			Status:  model.ResultUnavailable,
			Message: fmt.Sprintf("Món %s hiện đang %s (Hết hàng/Sắp có), không thể đặt.", item.Name, item.Status),
		}
	}
	return model.ToolResult{Status: model.ResultFound, ItemDetails: item}
}

// parseArgs decodes the tool call arguments best-effort; malformed JSON
// degrades to an empty argument map rather than failing the call.
func parseArgs(raw string) map[string]any {
	args := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		logx.Warn().Err(err).Str("arguments", raw).Msg("malformed tool arguments")
	}
	return args
}

func argString(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	switch vv := v.(type) {
	case string:
		return strings.TrimSpace(vv)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func argInt(args map[string]any, key string) int {
	v, ok := args[key]
	if !ok {
		return 0
	}
	switch vv := v.(type) {
	case float64:
		// JSON numbers decode as float64.
		return int(vv)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(vv)); err == nil {
			return n
		}
	}
	return 0
}
