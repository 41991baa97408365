package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/affiliatehub/shopee-relay/internal/api/handlers"
	apimw "github.com/affiliatehub/shopee-relay/internal/api/middleware"
	"github.com/affiliatehub/shopee-relay/internal/bot"
	"github.com/affiliatehub/shopee-relay/internal/config"
	"github.com/affiliatehub/shopee-relay/internal/digest"
	"github.com/affiliatehub/shopee-relay/internal/shopee"
	logx "github.com/affiliatehub/shopee-relay/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the relay server, bot, and digest scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := logx.New(cfg.Logging.Level, cfg.Logging.Format)

	gql := shopee.NewClient(
		cfg.Shopee.AppID,
		cfg.Shopee.Secret,
		shopee.WithBaseURL(cfg.Shopee.BaseURL),
		shopee.WithHTTPClient(&http.Client{Timeout: cfg.Shopee.Timeout}),
	)
	affiliate := shopee.NewAffiliate(gql)
	paginator := shopee.NewPaginator(
		shopee.WithMaxPages(cfg.Shopee.Pagination.MaxPages),
		shopee.WithPageDelay(cfg.Shopee.Pagination.PageDelay),
		shopee.WithPaginatorLogger(logger),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	apiLog := logx.Component(slogger, "api")
	e.Use(apimw.Recovery(apiLog))
	e.Use(apimw.RequestLog(apiLog))
	e.Use(apimw.Metrics())

	health := handlers.NewHealthHandler(nil)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Shopee Relay API", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(affiliate))
	handlers.RegisterLinkRoutes(api, handlers.NewLinksHandler(affiliate))
	handlers.RegisterReportRoutes(api, handlers.NewReportsHandler(affiliate, paginator))
	handlers.RegisterOfferRoutes(api, handlers.NewOffersHandler(affiliate))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var botAPI *bot.Client
	if cfg.Bot.Enabled {
		botAPI = bot.NewClient(cfg.Bot.Token)
		b := bot.New(botAPI, affiliate, paginator,
			bot.WithLogger(logger),
			bot.WithPollTimeout(cfg.Bot.PollTimeout),
		)
		go func() {
			if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("bot stopped", "err", err)
			}
		}()
	}

	var digestSched *digest.Scheduler
	if cfg.Digest.Enabled {
		digestLog := logx.Component(slogger, "digest")
		d := digest.New(
			affiliate,
			paginator,
			botAPI,
			cfg.Bot.AdminChatID,
			cfg.Digest.Window,
			digestLog,
		)
		digestSched, err = digest.NewScheduler(d, cfg.Digest.Interval, digestLog)
		if err != nil {
			return fmt.Errorf("creating digest scheduler: %w", err)
		}
		digestSched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	cancel()

	if digestSched != nil {
		<-digestSched.Stop().Done()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
