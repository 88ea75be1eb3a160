package v1

import "github.com/shenikar/dummy_reports/internal/models"

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		Type:            string(model.Type),
		Description:     model.Description,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		TrustScore:      model.TrustScore,
		IsResolved:      model.IsResolved,
		CreatedAt:       model.CreatedAt,
		LastConfirmedAt: model.LastConfirmedAt,
	}
}

// BatchToResponse преобразует партию в DTO
func BatchToResponse(batch *models.Batch) *BatchResponse {
	responses := make([]*ReportResponse, len(batch.Reports))
	for i, model := range batch.Reports {
		responses[i] = ModelToReportResponse(model)
	}
	return &BatchResponse{
		BatchID: batch.ID,
		Count:   len(responses),
		Reports: responses,
	}
}
