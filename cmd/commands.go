package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/shenikar/dummy_reports/docs"
	v1 "github.com/shenikar/dummy_reports/internal/handler/http/v1"
	"github.com/shenikar/dummy_reports/internal/publisher"
	"github.com/shenikar/dummy_reports/internal/repository"
	"github.com/shenikar/dummy_reports/internal/service"
	"github.com/shenikar/dummy_reports/internal/sqlfile"
	"github.com/shenikar/dummy_reports/pkg/postgres"
	redisclient "github.com/shenikar/dummy_reports/pkg/redis"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write generated reports as SQL INSERT statements to the output file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd)
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Apply migrations and insert generated reports directly into Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSeed(cmd)
		},
	}
}

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Push generated reports onto the Redis queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPublish(cmd)
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve generated reports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd)
		},
	}
}

func (a *app) newService(repo service.ReportRepository, pub publisher.ReportPublisher) (service.ReportService, error) {
	gen, err := service.NewGenerator(a.cfg, a.clock)
	if err != nil {
		return nil, err
	}
	return service.NewReportService(gen, repo, pub, a.log, a.cfg), nil
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	svc, err := a.newService(nil, nil)
	if err != nil {
		return err
	}

	batch, err := svc.GenerateReports(ctx, a.cfg.NumRecords)
	if err != nil {
		return err
	}
	if err := svc.WriteSQLFile(ctx, batch); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sqlfile.Summary(len(batch.Reports), a.cfg.OutputFile, a.cfg.OutputMode))
	return nil
}

func (a *app) runSeed(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if a.cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL environment variable is required for seed")
	}

	if err := runMigrations(a.cfg, a.log); err != nil {
		return err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbpool.Close()
	a.log.Info("Successfully connected to PostgreSQL")

	svc, err := a.newService(repository.NewReportRepository(dbpool, a.log), nil)
	if err != nil {
		return err
	}

	batch, err := svc.GenerateReports(ctx, a.cfg.NumRecords)
	if err != nil {
		return err
	}
	inserted, err := svc.SeedDatabase(ctx, batch)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d records into reports\n", inserted)
	return nil
}

func (a *app) runPublish(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, a.cfg.RedisAddr, a.cfg.RedisPass, a.cfg.RedisDB)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	a.log.Info("Successfully connected to Redis")

	svc, err := a.newService(nil, publisher.NewRedisReportPublisher(redisClient, a.cfg.RedisQueueKey))
	if err != nil {
		return err
	}

	batch, err := svc.GenerateReports(ctx, a.cfg.NumRecords)
	if err != nil {
		return err
	}
	if err := svc.PublishReports(ctx, batch); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published %d records to %s\n", len(batch.Reports), a.cfg.RedisQueueKey)
	return nil
}

func (a *app) runServe(cmd *cobra.Command) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := a.newService(nil, nil)
	if err != nil {
		return err
	}
	handler := v1.NewHandler(svc, a.log, a.cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	a.log.Infof("HTTP server started on port %s", a.cfg.HTTPPort)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	a.log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.log.Info("Server gracefully stopped")
	return nil
}
