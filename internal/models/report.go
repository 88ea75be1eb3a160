package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportType - категория фейкового отчёта
type ReportType string

const (
	ReportTypeFlood       ReportType = "flood"
	ReportTypeTrafficJam  ReportType = "traffic_jam"
	ReportTypeCrime       ReportType = "crime"
	ReportTypeRoadDamage  ReportType = "road_damage"
	ReportTypeBrokenLight ReportType = "broken_light"

	// Морские категории используются только прибрежным профилем генератора
	ReportTypeTidalFlood  ReportType = "tidal_flood"
	ReportTypeLeveeBreach ReportType = "levee_breach"
	ReportTypeShipwreck   ReportType = "shipwreck"
)

// Report - одна сгенерированная запись для таблицы reports
type Report struct {
	Type            ReportType `json:"type"`
	Description     string     `json:"description"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	TrustScore      int        `json:"trust_score"`
	IsResolved      bool       `json:"is_resolved"`
	CreatedAt       time.Time  `json:"created_at"`
	LastConfirmedAt time.Time  `json:"last_confirmed_at"`
}

// Batch - один прогон генератора
type Batch struct {
	ID      uuid.UUID `json:"batch_id"`
	Reports []*Report `json:"reports"`
}
