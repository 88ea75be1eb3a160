package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dummy_reports/internal/config"
	"github.com/shenikar/dummy_reports/internal/generator"
	"github.com/shenikar/dummy_reports/internal/models"
	"github.com/shenikar/dummy_reports/internal/publisher"
	"github.com/shenikar/dummy_reports/internal/sqlfile"
	"github.com/sirupsen/logrus"
)

var (
	ErrDatabaseNotConfigured  = errors.New("database is not configured")
	ErrPublisherNotConfigured = errors.New("report publisher is not configured")
)

// ReportRepository определяет контракт для записи отчётов в бд
type ReportRepository interface {
	InsertReports(ctx context.Context, reports []*models.Report) (int64, error)
}

// ReportService определяет контракт генерации отчётов и их доставки в хранилища
type ReportService interface {
	GenerateReports(ctx context.Context, count int) (*models.Batch, error)
	WriteSQLFile(ctx context.Context, batch *models.Batch) error
	SeedDatabase(ctx context.Context, batch *models.Batch) (int64, error)
	PublishReports(ctx context.Context, batch *models.Batch) error
}

type reportService struct {
	// mu защищает генератор: источник случайных чисел не потокобезопасен
	mu        sync.Mutex
	generator *generator.Generator
	repo      ReportRepository
	publisher publisher.ReportPublisher
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewReportService создаёт сервис. repo и pub могут быть nil, если соответствующий
// приёмник не нужен команде.
func NewReportService(gen *generator.Generator, repo ReportRepository, pub publisher.ReportPublisher, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		generator: gen,
		repo:      repo,
		publisher: pub,
		logger:    logger,
		cfg:       cfg,
	}
}

// NewGenerator собирает генератор из конфигурации
func NewGenerator(cfg *config.Config, clock clockwork.Clock) (*generator.Generator, error) {
	var rng *rand.Rand
	if cfg.RandomSeed != 0 {
		rng = generator.NewSeeded(cfg.RandomSeed)
	}
	gen, err := generator.New(generator.Options{
		CenterLat:    cfg.CenterLat,
		CenterLng:    cfg.CenterLng,
		RadiusKM:     cfg.RadiusKM,
		Sampling:     cfg.Sampling,
		Profile:      cfg.Profile,
		CoastlineLat: cfg.CoastlineLat,
	}, rng, clock)
	if err != nil {
		return nil, fmt.Errorf("service: could not create generator: %w", err)
	}
	return gen, nil
}

// GenerateReports генерирует партию отчётов, count <= 0 означает NUM_RECORDS
func (s *reportService) GenerateReports(ctx context.Context, count int) (*models.Batch, error) {
	if count <= 0 {
		count = s.cfg.NumRecords
	}
	batch := &models.Batch{ID: uuid.New()}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "GenerateReports",
		"batch_id": batch.ID,
		"count":    count,
	})

	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("Generation cancelled")
		return nil, fmt.Errorf("service: could not generate reports: %w", err)
	}

	s.mu.Lock()
	batch.Reports = s.generator.Generate(count)
	s.mu.Unlock()

	log.Debug("Reports generated")
	return batch, nil
}

// WriteSQLFile записывает партию в OUTPUT_FILE
func (s *reportService) WriteSQLFile(ctx context.Context, batch *models.Batch) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "WriteSQLFile",
		"batch_id": batch.ID,
		"path":     s.cfg.OutputFile,
		"mode":     s.cfg.OutputMode,
	})

	if err := sqlfile.WriteFile(s.cfg.OutputFile, batch.Reports, s.cfg.OutputMode); err != nil {
		log.WithError(err).Error("Failed to write SQL file")
		return fmt.Errorf("service: could not write SQL file: %w", err)
	}

	log.WithField("count", len(batch.Reports)).Info("SQL file written")
	return nil
}

// SeedDatabase вставляет партию напрямую в таблицу reports
func (s *reportService) SeedDatabase(ctx context.Context, batch *models.Batch) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "SeedDatabase",
		"batch_id": batch.ID,
	})

	if s.repo == nil {
		log.Error("Database repository is not configured")
		return 0, ErrDatabaseNotConfigured
	}

	inserted, err := s.repo.InsertReports(ctx, batch.Reports)
	if err != nil {
		log.WithError(err).Error("Failed to insert reports in repository")
		return 0, fmt.Errorf("service: could not seed database: %w", err)
	}

	log.WithField("inserted", inserted).Info("Database seeded successfully")
	return inserted, nil
}

// PublishReports публикует партию в очередь Redis
func (s *reportService) PublishReports(ctx context.Context, batch *models.Batch) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "PublishReports",
		"batch_id": batch.ID,
	})

	if s.publisher == nil {
		log.Error("Report publisher is not configured")
		return ErrPublisherNotConfigured
	}

	if err := s.publisher.Publish(ctx, batch.ID, batch.Reports); err != nil {
		log.WithError(err).Error("Failed to publish reports")
		return fmt.Errorf("service: could not publish reports: %w", err)
	}

	log.WithField("count", len(batch.Reports)).Info("Reports published successfully")
	return nil
}
