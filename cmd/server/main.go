package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/takumi/atelier/internal/config"
	"github.com/takumi/atelier/internal/domain/attendance"
	"github.com/takumi/atelier/internal/domain/chat"
	"github.com/takumi/atelier/internal/domain/message"
	"github.com/takumi/atelier/internal/domain/project"
	"github.com/takumi/atelier/internal/domain/user"
	"github.com/takumi/atelier/internal/sqlite"
	"github.com/takumi/atelier/internal/suggest"
	"github.com/takumi/atelier/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := sqlite.NewUserRepository(db)
	convRepo := sqlite.NewConversationRepository(db)
	msgRepo := sqlite.NewMessageRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)

	var suggester suggest.Suggester = suggest.Disabled{}
	if cfg.Suggest.URL != "" {
		suggester = suggest.NewHTTPClient(cfg.Suggest.URL, time.Duration(cfg.Suggest.TimeoutSeconds)*time.Second)
	}

	handler := transport.NewHandler(transport.Services{
		Users:      user.NewService(userRepo, logger),
		Chats:      chat.NewService(convRepo, logger),
		Messages:   message.NewService(msgRepo, logger),
		Projects:   project.NewService(projectRepo, logger),
		Attendance: attendance.NewService(attendanceRepo, logger),
		Suggester:  suggester,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: transport.NewServer(handler),
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
