package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	errx "github.com/s2o-platform/dine-assist/internal/core/error"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// Client reads the tenant-scoped menu from the menu service. It is a pure
// I/O adapter: one bounded-timeout GET per call, no retries, no caching.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(cfg model.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.MenuURL,
		httpc:   &http.Client{Timeout: cfg.TimeoutDuration()},
	}
}

// wireItem mirrors the menu service response shape before normalisation.
type wireItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	CategoryID  int     `json:"categoryId"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (w wireItem) normalize() model.MenuItem {
	status := model.ParseItemStatus(w.Status)
	// Older menu service rows only carry the isAvailable flag.
	if w.Status == "" && w.IsAvailable != nil && !*w.IsAvailable {
		status = model.StatusOutOfStock
	}
	price := w.Price
	if price < 0 {
		price = 0
	}
	return model.MenuItem{
		Name:        w.Name,
		Price:       price,
		Status:      status,
		Description: w.Description,
		CategoryID:  w.CategoryID,
	}
}

// Fetch returns the tenant's menu normalised into MenuItem records. Transport
// failures and non-success responses surface as wrapped upstream errors so
// callers can choose between degrading to an empty menu and escalating.
func (c *Client) Fetch(ctx context.Context, tenantID int) ([]model.MenuItem, error) {
	url := fmt.Sprintf("%s?tenantId=%d", c.baseURL, tenantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errx.WrapUpstream(err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		logx.Warn().Err(err).Int("tenant_id", tenantID).Msg("menu service unreachable")
		return nil, errx.WrapUpstream(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errx.WrapUpstream(fmt.Errorf("menu service returned status %d", resp.StatusCode))
	}

	var rows []wireItem
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, errx.WrapUpstream(err)
	}

	items := make([]model.MenuItem, 0, len(rows))
	for _, row := range rows {
		// A record without a name cannot be listed or ordered.
		if strings.TrimSpace(row.Name) == "" {
			continue
		}
		items = append(items, row.normalize())
	}
	return items, nil
}
