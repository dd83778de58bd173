package model

import "time"

// ================ Config ================

// UpstreamConfig points at the sibling menu and order services. Reads are
// best-effort with a short bounded timeout; there are no retries at this
// layer.
type UpstreamConfig struct {
	MenuURL  string `envconfig:"MENU_SERVICE_URL" default:"http://menu-service:8080/api/menu"`
	OrderURL string `envconfig:"ORDER_SERVICE_URL" default:"http://order-payment-service:8080/api/orders"`
	Timeout  int    `envconfig:"UPSTREAM_TIMEOUT" default:"2"`
}

// TimeoutDuration returns the upstream read timeout as a duration.
func (c UpstreamConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// BackendConfig describes the prioritized model pool. Earlier entries are
// preferred whenever they instantiate successfully.
type BackendConfig struct {
	Pool            []string `envconfig:"MODEL_POOL" default:"gemini-1.5-flash,gemini-2.0-flash-lite,gemini-1.5-pro"`
	Temperature     float32  `envconfig:"MODEL_TEMPERATURE" default:"0.4"`
	MaxTokens       int      `envconfig:"MODEL_MAX_TOKENS" default:"2000"`
	ExchangeTimeout int      `envconfig:"CHAT_EXCHANGE_TIMEOUT" default:"15"`
}

// ExchangeTimeoutDuration bounds one full model-path attempt, including the
// tool round-trip.
func (c BackendConfig) ExchangeTimeoutDuration() time.Duration {
	return time.Duration(c.ExchangeTimeout) * time.Second
}
