package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	errx "github.com/s2o-platform/dine-assist/internal/core/error"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// Client reads order status from the order service. One bounded-timeout GET
// per call; the two failure modes stay distinguishable so callers can tell
// "order does not exist" from "service unreachable".
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(cfg model.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.OrderURL,
		httpc:   &http.Client{Timeout: cfg.TimeoutDuration()},
	}
}

// Fetch returns the raw order payload for the given id. A non-success
// response yields errx.ErrOrderNotFound; transport failures yield a wrapped
// errx.ErrUpstreamUnreachable.
func (c *Client) Fetch(ctx context.Context, orderID int) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errx.WrapUpstream(err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		logx.Warn().Err(err).Int("order_id", orderID).Msg("order service unreachable")
		return nil, errx.WrapUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errx.ErrOrderNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.WrapUpstream(err)
	}
	if !json.Valid(body) {
		return nil, errx.WrapUpstream(fmt.Errorf("order service returned invalid JSON"))
	}
	return json.RawMessage(body), nil
}
