package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kitchenpos/cmd"
	httpadapter "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/rabbitmq"
	"kitchenpos/internal/jobs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(slogger)

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, slogger); err != nil {
		log.Fatalf("kitchenpos stopped: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config, slogger *slog.Logger) error {
	db, err := openDB(configs)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	if err = postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	bus, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange)
	if err != nil {
		return err
	}
	defer func() {
		_ = bus.Close()
	}()

	app := cmd.NewCompositionRoot(configs, db, bus)

	relay, err := jobs.NewOutboxRelayJob(
		app.CreatePublishOutboxMessagesCommandHandler(),
		configs.OutboxSchedule,
		configs.OutboxBatchSize,
		slogger,
	)
	if err != nil {
		return err
	}
	jobManager := jobs.NewJobManager(relay)

	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	e, err := httpadapter.NewEcho(doc, httpadapter.NewServer(app.CreateHTTPHandlers()), slogger)
	if err != nil {
		return err
	}

	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slogger.InfoContext(gctx, "HTTP server listening", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slogger.InfoContext(shutdownCtx, "Shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch configs.DBDriver {
	case cmd.DriverSQLite:
		return postgres.OpenSQLite(configs.SQLitePath, gormConfig)
	default:
		return postgres.OpenPostgres(configs.PostgresDSN(), gormConfig)
	}
}
