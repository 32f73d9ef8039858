package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/tripstack/travel-mcp-server/configs"
	"github.com/tripstack/travel-mcp-server/internal/app"
	"github.com/tripstack/travel-mcp-server/internal/audit"
	"github.com/tripstack/travel-mcp-server/internal/config"
	"github.com/tripstack/travel-mcp-server/internal/configfile"
	"github.com/tripstack/travel-mcp-server/internal/geo"
	"github.com/tripstack/travel-mcp-server/internal/idempotency"
	"github.com/tripstack/travel-mcp-server/internal/log"
	"github.com/tripstack/travel-mcp-server/internal/refdata"
	"github.com/tripstack/travel-mcp-server/internal/registry"
	"github.com/tripstack/travel-mcp-server/internal/render"
	"github.com/tripstack/travel-mcp-server/internal/server"
	"github.com/tripstack/travel-mcp-server/internal/service"
	"github.com/tripstack/travel-mcp-server/internal/timeutil"
	"github.com/tripstack/travel-mcp-server/internal/toolset"
	"github.com/tripstack/travel-mcp-server/internal/upstream"
)

func main() {
	embeddedConfig := flag.Bool("embedded-config", false, "Use the embedded default config instead of the config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	var rendered []byte
	if *embeddedConfig {
		raw, err := configs.Load(configs.DefaultName)
		if err != nil {
			logger.Error("load embedded config failed", "error", err)
			os.Exit(1)
		}
		rendered, err = render.RenderBytes(configs.DefaultName, raw)
		if err != nil {
			logger.Error("render config failed", "error", err)
			os.Exit(1)
		}
	} else {
		rendered, err = render.RenderFile(cfg.ConfigPath)
		if err != nil {
			logger.Error("render config failed", "error", err)
			os.Exit(1)
		}
	}

	fileCfg, err := configfile.Load(rendered)
	if err != nil {
		logger.Error("parse config failed", "error", err)
		os.Exit(1)
	}

	var cache *idempotency.Cache
	if fileCfg.Server.Idempotency.Enabled {
		ttl := timeutil.ParseDurationOrDefault(fileCfg.Server.Idempotency.TTL, time.Hour)
		cache = idempotency.NewCache(ttl, fileCfg.Server.Idempotency.MaxEntries)
	}

	reg := registry.New()
	if err := toolset.Register(reg, buildServices(fileCfg, logger)); err != nil {
		logger.Error("register tools failed", "error", err)
		os.Exit(1)
	}

	builder := server.Builder{
		Logger:           logger,
		Audit:            audit.New(logger),
		Cache:            cache,
		CacheKeyStrategy: fileCfg.Server.Idempotency.KeyStrategy,
		ToolTimeout:      timeutil.ParseDurationOrDefault(fileCfg.Server.ToolTimeout, 30*time.Second),
		Registry:         reg,
	}
	mcpServer, err := builder.Build(fileCfg.Server.Name, fileCfg.Server.Version)
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	switch fileCfg.Server.Transport {
	case "", "stdio":
		if err := mcpServer.Run(baseCtx, &mcp.StdioTransport{}); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := runHTTP(baseCtx, cfg, fileCfg, mcpServer, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

// buildServices wires the per-vertical services: live verticals get the
// shared HTTP client and their RapidAPI credentials, mock verticals get
// the built-in reference tables.
func buildServices(fileCfg *configfile.Config, logger *slog.Logger) toolset.Services {
	client := &upstream.Client{Logger: logger}

	geocoder := geo.New(client, logger)
	if fileCfg.Geocoder.BaseURL != "" {
		geocoder.BaseURL = fileCfg.Geocoder.BaseURL
	}
	if fileCfg.Geocoder.UserAgent != "" {
		geocoder.UserAgent = fileCfg.Geocoder.UserAgent
	}
	if fileCfg.Geocoder.RatePerSecond > 0 {
		geocoder.Limiter = rate.NewLimiter(rate.Limit(fileCfg.Geocoder.RatePerSecond), 1)
	}

	return toolset.Services{
		Flights:     service.NewFlightService(client, credentials(fileCfg.FlightAPI), nil),
		Hotels:      service.NewHotelService(refdata.Hotels(), nil),
		Cars:        service.NewCarService(client, geocoder, credentials(fileCfg.CarAPI), nil),
		Trains:      service.NewTrainService(refdata.Trains(), nil),
		Itineraries: service.NewItineraryService(refdata.Itineraries(), nil),
	}
}

func credentials(api configfile.VerticalAPIConfig) service.Credentials {
	return service.Credentials{
		Host:    api.RapidAPI.Host,
		Key:     api.RapidAPI.Key,
		BaseURL: api.RapidAPI.BaseURL,
	}
}

func runHTTP(ctx context.Context, envCfg config.Config, fileCfg *configfile.Config, mcpServer *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless: fileCfg.Server.HTTP.Stateless,
	})

	application, err := app.New(ctx, fileCfg.Server, handler, logger, envCfg.ShutdownTimeout)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
