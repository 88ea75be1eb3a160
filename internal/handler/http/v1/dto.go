package v1

import (
	"time"

	"github.com/google/uuid"
)

// GenerateReportsQuery DTO для параметров генерации
// @Description DTO для параметров генерации
type GenerateReportsQuery struct {
	Count int `form:"count" validate:"omitempty,min=1,max=1000"`
}

// ReportResponse DTO для одного сгенерированного отчёта
// @Description DTO для одного сгенерированного отчёта
type ReportResponse struct {
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	TrustScore      int       `json:"trust_score"`
	IsResolved      bool      `json:"is_resolved"`
	CreatedAt       time.Time `json:"created_at"`
	LastConfirmedAt time.Time `json:"last_confirmed_at"`
}

// BatchResponse DTO для ответа с партией отчётов
// @Description DTO для ответа с партией отчётов
type BatchResponse struct {
	BatchID uuid.UUID         `json:"batch_id"`
	Count   int               `json:"count"`
	Reports []*ReportResponse `json:"reports"`
}
