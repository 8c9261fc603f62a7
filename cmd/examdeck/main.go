package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/examdeck/catalog"
	"github.com/hazyhaar/examdeck/dbopen"
	"github.com/hazyhaar/examdeck/examparse"
	"github.com/hazyhaar/examdeck/quizstore"
	"github.com/hazyhaar/examdeck/server"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	mcpMode := flag.Bool("mcp", false, "serve MCP tools on stdio instead of HTTP")
	flag.Parse()

	// Logging.
	var lvl slog.Level
	switch env("LOG_LEVEL", "info") {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logOut := os.Stdout
	if *mcpMode {
		// stdout carries the MCP stream in stdio mode.
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	// Environment overrides YAML.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	cfg.TestsDir = env("TESTS_DIR", cfg.TestsDir)
	cfg.DBPath = env("DB_PATH", cfg.DBPath)
	cfg.MaxQuestionsPerRun = envInt("MAX_QUESTIONS_PER_RUN", cfg.MaxQuestionsPerRun)
	cfg.MaxTimeLimitMinutes = envInt("MAX_TIME_LIMIT_MINUTES", cfg.MaxTimeLimitMinutes)
	cfg.MaxUploadBytes = int64(envInt("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	cfg.CleanupAgeSeconds = envInt("SESSION_CLEANUP_AGE_SECONDS", cfg.CleanupAgeSeconds)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := dbopen.Open(cfg.DBPath, dbopen.WithMkdirAll())
	if err != nil {
		slog.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := quizstore.NewStore(db, logger)
	if err := store.Init(ctx); err != nil {
		slog.Error("store init", "error", err)
		os.Exit(1)
	}

	parser := examparse.New(examparse.Config{
		MaxFileSize: cfg.MaxUploadBytes,
		Logger:      logger,
	})

	cat := catalog.New(cfg.TestsDir, parser, logger)
	if err := cat.Refresh(ctx); err != nil {
		slog.Warn("catalog refresh", "error", err)
	}

	// Hourly session cleanup.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := store.Cleanup(ctx, cfg.CleanupAge()); err != nil {
					slog.Warn("session cleanup", "error", err)
				}
			}
		}
	}()

	if *mcpMode {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "examdeck",
			Version: "1.0.0",
		}, nil)
		cat.RegisterMCP(mcpSrv)
		slog.Info("MCP stdio serving")
		if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP", "error", err)
			os.Exit(1)
		}
		return
	}

	svc := server.New(cfg, cat, store, parser, logger)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           svc.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr, "tests", cat.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
