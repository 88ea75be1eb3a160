package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dummy_reports/internal/config"
	"github.com/shenikar/dummy_reports/internal/models"
	publisher_mocks "github.com/shenikar/dummy_reports/internal/publisher/mocks"
	"github.com/shenikar/dummy_reports/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		CenterLat:  -6.597,
		CenterLng:  106.799,
		RadiusKM:   15,
		NumRecords: 150,
		Sampling:   "square",
		Profile:    "standard",
		RandomSeed: 11,
		OutputFile: filepath.Join(t.TempDir(), "dummy_data.sql"),
		OutputMode: "overwrite",
	}
}

// newTestReportService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository, *publisher_mocks.MockReportPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	publisherMock := publisher_mocks.NewMockReportPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := newTestConfig(t)
	gen, err := NewGenerator(cfg, clockwork.NewFakeClockAt(time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	service := NewReportService(gen, repoMock, publisherMock, logger, cfg)
	return service.(*reportService), repoMock, publisherMock
}

func TestNewGenerator_InvalidConfig(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RadiusKM = 0

	gen, err := NewGenerator(cfg, nil)
	require.Error(t, err)
	assert.Nil(t, gen)
	assert.ErrorContains(t, err, "could not create generator")
}

func TestGenerateReports_DefaultCount(t *testing.T) {
	service, _, _ := newTestReportService(t)

	batch, err := service.GenerateReports(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, batch.Reports, 150)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", batch.ID.String())
}

func TestGenerateReports_ExplicitCount(t *testing.T) {
	service, _, _ := newTestReportService(t)

	first, err := service.GenerateReports(context.Background(), 5)
	require.NoError(t, err)
	second, err := service.GenerateReports(context.Background(), 5)
	require.NoError(t, err)

	assert.Len(t, first.Reports, 5)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateReports_CancelledContext(t *testing.T) {
	service, _, _ := newTestReportService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := service.GenerateReports(ctx, 5)

	require.Error(t, err)
	assert.Nil(t, batch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteSQLFile_Success(t *testing.T) {
	service, _, _ := newTestReportService(t)
	ctx := context.Background()
	batch, err := service.GenerateReports(ctx, 150)
	require.NoError(t, err)

	// Два прогона подряд дают одинаковое количество выражений
	for run := 0; run < 2; run++ {
		require.NoError(t, service.WriteSQLFile(ctx, batch))

		data, err := os.ReadFile(service.cfg.OutputFile)
		require.NoError(t, err)
		assert.Len(t, strings.Split(string(data), "\n"), 150)
	}
}

func TestWriteSQLFile_Error(t *testing.T) {
	service, _, _ := newTestReportService(t)
	service.cfg.OutputFile = filepath.Join(t.TempDir(), "missing", "dummy_data.sql")
	batch, err := service.GenerateReports(context.Background(), 1)
	require.NoError(t, err)

	err = service.WriteSQLFile(context.Background(), batch)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not write SQL file")
}

func TestSeedDatabase_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()
	batch, err := service.GenerateReports(ctx, 10)
	require.NoError(t, err)

	// Ожидания
	repoMock.EXPECT().
		InsertReports(ctx, batch.Reports).
		Return(int64(10), nil).
		Times(1)

	// Действие
	inserted, err := service.SeedDatabase(ctx, batch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(10), inserted)
}

func TestSeedDatabase_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()
	batch := &models.Batch{Reports: []*models.Report{{Type: models.ReportTypeCrime}}}

	repoMock.EXPECT().
		InsertReports(ctx, batch.Reports).
		Return(int64(0), fmt.Errorf("failed to begin transaction")).
		Times(1)

	inserted, err := service.SeedDatabase(ctx, batch)

	require.Error(t, err)
	assert.Zero(t, inserted)
	assert.ErrorContains(t, err, "could not seed database")
}

func TestSeedDatabase_NotConfigured(t *testing.T) {
	service, _, _ := newTestReportService(t)
	service.repo = nil

	_, err := service.SeedDatabase(context.Background(), &models.Batch{})

	assert.ErrorIs(t, err, ErrDatabaseNotConfigured)
}

func TestPublishReports_Success(t *testing.T) {
	service, _, publisherMock := newTestReportService(t)
	ctx := context.Background()
	batch, err := service.GenerateReports(ctx, 3)
	require.NoError(t, err)

	publisherMock.EXPECT().
		Publish(ctx, batch.ID, batch.Reports).
		Return(nil).
		Times(1)

	require.NoError(t, service.PublishReports(ctx, batch))
}

func TestPublishReports_PublisherError(t *testing.T) {
	service, _, publisherMock := newTestReportService(t)
	ctx := context.Background()
	batch, err := service.GenerateReports(ctx, 3)
	require.NoError(t, err)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("redis down")).
		Times(1)

	err = service.PublishReports(ctx, batch)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not publish reports")
}

func TestPublishReports_NotConfigured(t *testing.T) {
	service, _, _ := newTestReportService(t)
	service.publisher = nil

	err := service.PublishReports(context.Background(), &models.Batch{})

	assert.ErrorIs(t, err, ErrPublisherNotConfigured)
}
