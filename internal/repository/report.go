package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/dummy_reports/internal/models"
	"github.com/shenikar/dummy_reports/internal/service"
	"github.com/sirupsen/logrus"
)

const insertReportQuery = `
	INSERT INTO reports (type, description, latitude, longitude, trust_score, is_resolved, created_at, last_confirmed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// DBPool - часть pgxpool.Pool, нужная репозиторию; позволяет подменить пул в тестах
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ReportRepository struct {
	db     DBPool
	logger *logrus.Logger
}

func NewReportRepository(db DBPool, logger *logrus.Logger) service.ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

// InsertReports вставляет все отчёты в одной транзакции: либо вся партия, либо ничего
func (r *ReportRepository) InsertReports(ctx context.Context, reports []*models.Report) (int64, error) {
	if len(reports) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			r.logger.WithError(rollbackErr).Error("Failed to rollback transaction")
		}
	}()

	var inserted int64
	for i, report := range reports {
		cmdTag, err := tx.Exec(ctx, insertReportQuery,
			string(report.Type),
			report.Description,
			report.Latitude,
			report.Longitude,
			report.TrustScore,
			report.IsResolved,
			report.CreatedAt,
			report.LastConfirmedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert report %d: %w", i, err)
		}
		inserted += cmdTag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return inserted, nil
}
