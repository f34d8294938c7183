package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vigilhub/attention-escalator/internal/api"
	"github.com/vigilhub/attention-escalator/internal/classifier"
	"github.com/vigilhub/attention-escalator/internal/config"
	"github.com/vigilhub/attention-escalator/internal/directory"
	"github.com/vigilhub/attention-escalator/internal/dispatcher"
	"github.com/vigilhub/attention-escalator/internal/engine"
	"github.com/vigilhub/attention-escalator/internal/ledger"
	"github.com/vigilhub/attention-escalator/internal/metrics"
	"github.com/vigilhub/attention-escalator/internal/permission"
	"github.com/vigilhub/attention-escalator/internal/platform"
	"github.com/vigilhub/attention-escalator/internal/poller"
	"github.com/vigilhub/attention-escalator/internal/prefs"
	"github.com/vigilhub/attention-escalator/internal/tabalert"
)

func main() {
	root := &cobra.Command{
		Use:   "escalatord",
		Short: "Urgency classification and attention-escalation engine",
	}
	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the escalation engine and its HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", zap.Error(err))
		return err
	}

	// ---- platform resources ----
	title := platform.NewWindowTitle(cfg.WindowTitle)
	notifier := platform.NewWebhookNotifier(cfg.NotifierWebhookURL, cfg.NotifierTimeout)
	audio := platform.NewChimePlayer()

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	blinker := tabalert.New(title, cfg.BlinkInterval, logger)
	store := prefs.New(blinker.Stop)
	perms := permission.NewGateway(notifier, store, logger)
	cls := classifier.New(cfg.ThresholdUSD, logger)
	led := ledger.New()

	onDispatched, onSuppressed, onFailed := m.DispatchHooks()
	disp := dispatcher.New(
		store, perms, blinker, notifier, audio,
		dispatcher.NewTierLimiters(cfg.PushRatePerMin, cfg.SoundRatePerMin),
		cfg.PushAutoDismiss,
		logger,
		dispatcher.Hooks{
			OnDispatched: onDispatched,
			OnSuppressed: onSuppressed,
			OnFailed:     onFailed,
		},
	)

	onClassified, onLedgerChanged := m.EngineHooks()
	eng := engine.New(cls, led, store, perms, disp, blinker, title, audio, logger, engine.Hooks{
		OnClassified:    onClassified,
		OnLedgerChanged: onLedgerChanged,
	})

	dir := directory.NewClient(cfg.DirectoryBaseURL, cfg.DirectoryTimeout)

	// ---- background poll loop ----
	pollCtx, cancelPoll := context.WithCancel(context.Background())
	defer cancelPoll()

	pollDone := make(chan struct{})
	p := poller.New(dir, eng, cfg.PollInterval, logger)
	go func() {
		p.Run(pollCtx)
		close(pollDone)
	}()

	// ---- HTTP server ----
	router := api.NewRouter(eng, dir, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
		return err
	case <-quit:
		logger.Info("shutdown signal received")
	}

	// 1. Stop accepting new HTTP requests.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// 2. Stop the poll loop and wait for the in-flight tick to finish.
	cancelPoll()
	<-pollDone

	// 3. Tear down the engine: stop the tab alert, restore the title,
	//    release audio, discard session state.
	if err := eng.Close(); err != nil {
		logger.Error("engine teardown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
	return nil
}
