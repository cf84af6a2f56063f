// Package main запускает HTTP-сервис комитетов
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"committee-service/internal/config"
	httpapi "committee-service/internal/http"
	"committee-service/internal/repository"
	"committee-service/internal/repository/sqlite"
	"committee-service/internal/service"
)

// storage - набор зависимостей сервисного слоя для выбранного драйвера.
type storage struct {
	committees service.CommitteeRepository
	users      service.UserRepository
	txManager  service.TransactionManager
	close      func()
}

func openStorage(ctx context.Context, cfg config.Config) (storage, error) {
	if cfg.DBDriver == config.DriverSQLite {
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return storage{}, err
		}
		return storage{
			committees: sqlite.NewCommitteeRepo(store),
			users:      sqlite.NewUserRepo(store),
			txManager:  store,
			close:      func() { _ = store.Close() },
		}, nil
	}

	db, err := repository.NewPostgres(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		return storage{}, err
	}
	return storage{
		committees: repository.NewCommitteeRepo(db),
		users:      repository.NewUserRepo(db),
		txManager:  repository.NewTransactionManager(db),
		close:      db.Close,
	}, nil
}

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	level, _ := cfg.SlogLevel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	defer store.close()
	logger.Info("storage ready", slog.String("driver", cfg.DBDriver))

	committeeService := service.NewCommitteeService(store.committees, store.txManager)
	userService := service.NewUserService(store.users)

	handler := httpapi.NewHandler(committeeService, userService, logger, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
