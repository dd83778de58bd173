package backend

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	errx "github.com/s2o-platform/dine-assist/internal/core/error"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// Factory instantiates one conversational backend from the pool.
type Factory interface {
	Name() string
	New(ctx context.Context) (einomodel.ToolCallingChatModel, error)
}

// NewGeminiClient creates the shared genai client used by every factory in
// the pool.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("error creating Gemini client")
		return nil, errx.WrapBackend(err)
	}
	return client, nil
}

// GeminiFactory builds tool-bound Gemini chat models over a shared client.
// Tools are declared only; generation surfaces tool calls on the reply
// message and never executes them implicitly.
type GeminiFactory struct {
	client *genai.Client
	model  string
	cfg    model.BackendConfig
	tools  []*schema.ToolInfo
}

func (f *GeminiFactory) Name() string {
	return f.model
}

func (f *GeminiFactory) New(ctx context.Context) (einomodel.ToolCallingChatModel, error) {
	temperature := f.cfg.Temperature
	maxTokens := f.cfg.MaxTokens
	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      f.client,
		Model:       f.model,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, errx.WrapBackend(err)
	}
	bound, err := cm.WithTools(f.tools)
	if err != nil {
		return nil, errx.WrapBackend(err)
	}
	return bound, nil
}

// NewGeminiPool builds the prioritized factory list from the configured
// model names. Pool order defines preference.
func NewGeminiPool(client *genai.Client, cfg model.BackendConfig, tools []*schema.ToolInfo) []Factory {
	pool := make([]Factory, 0, len(cfg.Pool))
	for _, name := range cfg.Pool {
		pool = append(pool, &GeminiFactory{
			client: client,
			model:  name,
			cfg:    cfg,
			tools:  tools,
		})
	}
	return pool
}
