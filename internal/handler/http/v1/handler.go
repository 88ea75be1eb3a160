package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/dummy_reports/internal/config"
	"github.com/shenikar/dummy_reports/internal/service"
	"github.com/shenikar/dummy_reports/internal/sqlfile"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// bindQuery разбирает и проверяет параметры генерации, при ошибке пишет 400
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry) (GenerateReportsQuery, bool) {
	var query GenerateReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return query, false
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return query, false
	}
	return query, true
}

// @Summary Generate dummy reports
// @Description Generate a batch of random reports around the configured center point.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param count query int false "Number of reports (1-1000)"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} map[string]string "Invalid count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/dummy [get]
func (h *Handler) generateReports(c *gin.Context) {
	log := h.logger.WithField("method", "generateReports")

	query, ok := h.bindQuery(c, log)
	if !ok {
		return
	}

	batch, err := h.reportService.GenerateReports(c.Request.Context(), query.Count)
	if err != nil {
		log.WithError(err).Error("Failed to generate reports in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, BatchToResponse(batch))
}

// @Summary Generate dummy reports as SQL
// @Description Generate a batch of random reports and return them as INSERT statements.
// @Tags Reports
// @Produce plain
// @Security ApiKeyAuth
// @Param count query int false "Number of reports (1-1000)"
// @Success 200 {string} string "SQL INSERT statements"
// @Failure 400 {object} map[string]string "Invalid count"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/dummy/sql [get]
func (h *Handler) generateReportsSQL(c *gin.Context) {
	log := h.logger.WithField("method", "generateReportsSQL")

	query, ok := h.bindQuery(c, log)
	if !ok {
		return
	}

	batch, err := h.reportService.GenerateReports(c.Request.Context(), query.Count)
	if err != nil {
		log.WithError(err).Error("Failed to generate reports in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("X-Batch-ID", batch.ID.String())
	c.String(http.StatusOK, sqlfile.Render(batch.Reports))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
