package sqlfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/shenikar/dummy_reports/internal/models"
)

const (
	ModeOverwrite = "overwrite"
	ModeAppend    = "append"

	// TimestampLayout - формат created_at и last_confirmed_at
	TimestampLayout = "2006-01-02 15:04:05"

	insertPrefix = "INSERT INTO reports (type, description, latitude, longitude, trust_score, is_resolved, created_at, last_confirmed_at) VALUES "
)

// Escape удваивает одинарные кавычки для строкового литерала SQL
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// FormatInsert форматирует один отчёт как INSERT-выражение
func FormatInsert(r *models.Report) string {
	createdAt := r.CreatedAt.Format(TimestampLayout)
	lastConfirmedAt := r.LastConfirmedAt.Format(TimestampLayout)
	return fmt.Sprintf("%s('%s', '%s', %.6f, %.6f, %d, %t, '%s', '%s');",
		insertPrefix,
		Escape(string(r.Type)),
		Escape(r.Description),
		r.Latitude,
		r.Longitude,
		r.TrustScore,
		r.IsResolved,
		createdAt,
		lastConfirmedAt,
	)
}

// Render соединяет выражения переводом строки, без завершающего перевода строки
func Render(reports []*models.Report) string {
	statements := make([]string, len(reports))
	for i, r := range reports {
		statements[i] = FormatInsert(r)
	}
	return strings.Join(statements, "\n")
}

// WriteFile записывает отчёты в файл. В режиме overwrite файл создаётся заново,
// в режиме append выражения дописываются после перевода строки.
func WriteFile(path string, reports []*models.Report, mode string) error {
	flags := os.O_WRONLY | os.O_CREATE
	content := Render(reports)
	switch mode {
	case "", ModeOverwrite:
		flags |= os.O_TRUNC
	case ModeAppend:
		flags |= os.O_APPEND
		content = "\n" + content
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Summary возвращает итоговую строку для stdout
func Summary(count int, path, mode string) string {
	if mode == ModeAppend {
		return fmt.Sprintf("Appended %d records to %s", count, path)
	}
	return fmt.Sprintf("Generated %d records in %s", count, path)
}
