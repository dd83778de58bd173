package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2o-platform/dine-assist/internal/assistant/catalog"
	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	errx "github.com/s2o-platform/dine-assist/internal/core/error"
)

type stubMenu struct {
	items []model.MenuItem
	err   error
}

func (s stubMenu) Fetch(context.Context, int) ([]model.MenuItem, error) {
	return s.items, s.err
}

type stubOrders struct {
	raw json.RawMessage
	err error
}

func (s stubOrders) Fetch(context.Context, int) (json.RawMessage, error) {
	return s.raw, s.err
}

func toolCall(name, args string) schema.ToolCall {
	return schema.ToolCall{
		ID:       "call_1",
		Function: schema.FunctionCall{Name: name, Arguments: args},
	}
}

func testMenu() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Trà Đào", Price: 25000, Status: model.StatusPromo},
		{Name: "Cơm Tấm", Price: 45000, Status: model.StatusOutOfStock},
	}
}

func newDispatcher(menu stubMenu, ord stubOrders) *Dispatcher {
	return NewDispatcher(menu, ord, catalog.NewFilterEngine())
}

func TestInvokeMenuFiltered(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolGetMenuFiltered, `{"filter_type": "promo"}`), 1)
	assert.Equal(t, model.ResultSuccess, res.Status)
	assert.Equal(t, model.FilterPromo, res.Filter)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Trà Đào", res.Items[0].Name)
}

func TestInvokeMenuFilteredEmpty(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolGetMenuFiltered, `{"filter_type": "coming_soon"}`), 1)
	assert.Equal(t, model.ResultEmpty, res.Status)
	assert.NotEmpty(t, res.Message)
}

func TestInvokeMenuFilteredUpstreamFailureDegradesToEmpty(t *testing.T) {
	d := newDispatcher(stubMenu{err: errx.ErrUpstreamUnreachable}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolGetMenuFiltered, `{"filter_type": "all"}`), 1)
	assert.Equal(t, model.ResultEmpty, res.Status)
}

func TestInvokeMenuAliasAndCategoryArgument(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolGetMenu, `{"category": "promo"}`), 1)
	assert.Equal(t, model.ResultSuccess, res.Status)
	assert.Equal(t, model.FilterPromo, res.Filter)
}

func TestInvokeMenuFilteredMissingArgumentDefaultsToAll(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolGetMenuFiltered, `{}`), 1)
	assert.Equal(t, model.ResultSuccess, res.Status)
	assert.Equal(t, model.FilterAll, res.Filter)
	assert.Len(t, res.Items, 2)
}

func TestInvokeOrderStatus(t *testing.T) {
	payload := json.RawMessage(`{"id": 7, "status": "Cooking"}`)
	d := newDispatcher(stubMenu{}, stubOrders{raw: payload})

	res := d.Invoke(context.Background(), toolCall(ToolCheckOrderStatus, `{"order_id": 7}`), 1)
	out, err := res.Payload()
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), out)
}

func TestInvokeOrderStatusNotFound(t *testing.T) {
	d := newDispatcher(stubMenu{}, stubOrders{err: errx.ErrOrderNotFound})

	res := d.Invoke(context.Background(), toolCall(ToolCheckOrderStatus, `{"order_id": "7"}`), 1)
	assert.Equal(t, model.ResultNotFound, res.Status)
	assert.Empty(t, res.Error)
}

func TestInvokeOrderStatusConnectionError(t *testing.T) {
	d := newDispatcher(stubMenu{}, stubOrders{err: errx.WrapUpstream(context.DeadlineExceeded)})

	res := d.Invoke(context.Background(), toolCall(ToolCheckOrderStatus, `{"order_id": 7}`), 1)
	assert.Equal(t, "connection_error", res.Error)
	assert.Empty(t, res.Status)
}

func TestInvokeOrderIntentUnavailable(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolPlaceOrderIntent, `{"item_name": "Cơm Tấm"}`), 1)
	assert.Equal(t, model.ResultUnavailable, res.Status)
	assert.Contains(t, res.Message, "Cơm Tấm")
}

func TestInvokeOrderIntentFound(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolPlaceOrderIntent, `{"item_name": "trà đào"}`), 1)
	assert.Equal(t, model.ResultFound, res.Status)
	require.NotNil(t, res.ItemDetails)
	assert.Equal(t, "Trà Đào", res.ItemDetails.Name)
}

func TestInvokeOrderIntentNotFound(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolPlaceOrderIntent, `{"item_name": "Pizza"}`), 1)
	assert.Equal(t, model.ResultNotFound, res.Status)
}

func TestInvokeUnknownTool(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall("launch_rocket", `{}`), 1)
	assert.Equal(t, "unknown_tool", res.Error)

	// The result still serialises so the round-trip to the model proceeds.
	out, err := res.Payload()
	require.NoError(t, err)
	assert.Contains(t, out, "unknown_tool")
}

func TestInvokeMalformedArguments(t *testing.T) {
	d := newDispatcher(stubMenu{items: testMenu()}, stubOrders{})

	res := d.Invoke(context.Background(), toolCall(ToolGetMenuFiltered, `not json`), 1)
	assert.Equal(t, model.ResultSuccess, res.Status)
	assert.Equal(t, model.FilterAll, res.Filter)
}

func TestDeclarationsSubset(t *testing.T) {
	all := Declarations()
	require.Len(t, all, 3)

	reduced := Declarations(ToolGetMenu, ToolCheckOrderStatus, "bogus")
	require.Len(t, reduced, 2)
	assert.Equal(t, ToolGetMenu, reduced[0].Name)
}
