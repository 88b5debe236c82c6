package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/clicktionary-backend/internal/auth"
	"github.com/heartmarshall/clicktionary-backend/internal/config"
	"github.com/heartmarshall/clicktionary-backend/internal/service/lookup"
	"github.com/heartmarshall/clicktionary-backend/internal/service/reader"
	"github.com/heartmarshall/clicktionary-backend/internal/transport/middleware"
	"github.com/heartmarshall/clicktionary-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services and serves the HTTP API until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
		slog.String("caps_tier", cfg.Lookup.CapsTier),
	)

	table, err := loadTable(cfg.Reader, logger)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, table, logger)
	if err != nil {
		return err
	}
	defer st.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tr := newTranslator(cfg.Translation, logger)
	dict := freedict.NewProvider(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	articles := article.NewExtractor(cfg.Reader.ImportTimeout, cfg.Reader.ImportMaxBytes, logger)

	lookupService, err := lookup.NewService(logger, dict, tr, table, cfg.Lookup, registry)
	if err != nil {
		return err
	}
	readerService := reader.NewService(logger, table, articles, tr, cfg.Reader)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	metrics := middleware.NewMetrics(registry)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	limiter.OnReject(metrics.RateLimited)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.RouterDeps{
		Reader:     rest.NewReaderHandler(readerService, logger),
		Words:      rest.NewWordHandler(lookupService, logger),
		Vocabulary: rest.NewVocabularyHandler(st.vocabulary, logger),
		Health:     rest.NewHealthHandler(st.ping, table, BuildVersion()),
		Metrics:    metrics,
		Gatherer:   registry,
		Limiter:    limiter,
		RateLimit:  cfg.RateLimit,
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// translator is what lookup and reader share.
type translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

func newTranslator(cfg config.TranslationConfig, logger *slog.Logger) translator {
	if !cfg.Enabled {
		logger.Info("translation disabled")
		return translate.NewStub()
	}
	return translate.NewMyMemory(cfg.BaseURL, cfg.Email, cfg.Timeout, logger)
}
