package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	errx "github.com/s2o-platform/dine-assist/internal/core/error"
)

func newTestClient(url string) *Client {
	return NewClient(model.UpstreamConfig{MenuURL: url, Timeout: 2})
}

func TestFetchNormalizesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("tenantId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Trà Đào", "price": 25000, "status": "Promo", "description": "Trà đào cam sả", "categoryId": 3},
			{"name": "Cơm Tấm", "price": 45000, "status": "Mystery"},
			{"name": "Bún Chả", "price": -1, "isAvailable": false},
			{"name": "   ", "price": 10000}
		]`))
	}))
	defer srv.Close()

	items, err := newTestClient(srv.URL).Fetch(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 3, "nameless records are dropped")

	assert.Equal(t, model.MenuItem{
		Name: "Trà Đào", Price: 25000, Status: model.StatusPromo,
		Description: "Trà đào cam sả", CategoryID: 3,
	}, items[0])

	// Unrecognised status defaults to Available.
	assert.Equal(t, model.StatusAvailable, items[1].Status)

	// Status-less rows honour the legacy isAvailable flag; negative prices clamp.
	assert.Equal(t, model.StatusOutOfStock, items[2].Status)
	assert.Equal(t, 0.0, items[2].Price)
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	items, err := newTestClient(srv.URL).Fetch(context.Background(), 1)
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, errx.ErrUpstreamUnreachable))
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	items, err := newTestClient(srv.URL).Fetch(context.Background(), 1)
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, errx.ErrUpstreamUnreachable))
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Fetch(context.Background(), 1)
	assert.Error(t, err)
}
