package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/s2o-platform/dine-assist/internal/assistant/backend"
	"github.com/s2o-platform/dine-assist/internal/assistant/catalog"
	"github.com/s2o-platform/dine-assist/internal/assistant/fallback"
	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	"github.com/s2o-platform/dine-assist/internal/assistant/orchestrator"
	"github.com/s2o-platform/dine-assist/internal/assistant/orders"
	"github.com/s2o-platform/dine-assist/internal/assistant/tools"
	"github.com/s2o-platform/dine-assist/internal/core"
	"github.com/s2o-platform/dine-assist/internal/server"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":5000"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	Upstream model.UpstreamConfig
	Backend  model.BackendConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	client, err := backend.NewGeminiClient(ctx, cfg.APIKey, cfg.BaseURL)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise Gemini client")
	}

	pool := backend.NewGeminiPool(client, cfg.Backend, tools.Declarations())
	sessions := backend.NewSessionManager(pool)

	menu := catalog.NewClient(cfg.Upstream)
	filters := catalog.NewFilterEngine()
	orderClient := orders.NewClient(cfg.Upstream)

	dispatcher := tools.NewDispatcher(menu, orderClient, filters)
	responder := fallback.NewResponder(menu, filters)
	orc := orchestrator.New(sessions, dispatcher, responder, cfg.Backend)

	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.New(orc)

	logx.Info().
		Str("addr", cfg.ListenAddr).
		Str("environment", env.String()).
		Strs("model_pool", cfg.Backend.Pool).
		Msg("dine-assist listening")

	if err := srv.Run(cfg.ListenAddr); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
