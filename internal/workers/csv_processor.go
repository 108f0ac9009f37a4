// internal/workers/csv_processor.go
package workers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/adapters/storage"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// Task type names registered with the queue.
const (
	TypeCSVImport        = "csv:import"
	TypeCleanupOldJobs   = "cleanup:old_jobs"
	TypeCleanupTempFiles = "cleanup:temp_files"
)

// CSVJobPayload represents the payload for CSV import jobs
type CSVJobPayload struct {
	JobID    string `json:"job_id"`
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
}

// CSVJobResult represents the result of a CSV import
type CSVJobResult struct {
	RowsProcessed  int      `json:"rows_processed"`
	WinesCreated   int      `json:"wines_created"`
	Errors         []string `json:"errors,omitempty"`
	ArchiveKey     string   `json:"archive_key,omitempty"`
	ProcessingTime string   `json:"processing_time"`
}

// CSVProcessor imports semicolon-separated wine files. Rows go through the
// wine service one by one, so every row gets full domain validation; bad rows
// are reported without aborting the import.
type CSVProcessor struct {
	service ports.WineService
	db      ports.Database
	storage storage.StorageClient
	logger  *slog.Logger
}

// NewCSVProcessor creates a new CSV processor. storage may be nil when
// archiving is disabled.
func NewCSVProcessor(service ports.WineService, db ports.Database, storage storage.StorageClient, logger *slog.Logger) *CSVProcessor {
	return &CSVProcessor{
		service: service,
		db:      db,
		storage: storage,
		logger:  logger.With(slog.String("processor", "csv")),
	}
}

// ProcessCSV processes a CSV file and imports its wines.
func (p *CSVProcessor) ProcessCSV(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload CSVJobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing CSV file",
		slog.String("job_id", payload.JobID),
		slog.String("file_path", payload.FilePath))

	if err := p.updateJobStatus(ctx, payload.JobID, "processing", nil); err != nil {
		p.logger.WarnContext(ctx, "failed to update job status",
			slog.String("error", err.Error()))
	}

	result, err := p.importFile(ctx, payload)
	if err != nil {
		msg := err.Error()
		if statusErr := p.updateJobStatus(ctx, payload.JobID, "failed", &msg); statusErr != nil {
			p.logger.WarnContext(ctx, "failed to update job status",
				slog.String("error", statusErr.Error()))
		}
		return err
	}

	result.ProcessingTime = time.Since(start).String()

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := p.updateJobResult(ctx, payload.JobID, "completed", resultJSON); err != nil {
		p.logger.WarnContext(ctx, "failed to update job result",
			slog.String("error", err.Error()))
	}

	if err := os.Remove(payload.FilePath); err != nil && !os.IsNotExist(err) {
		p.logger.WarnContext(ctx, "failed to remove temp file",
			slog.String("file", payload.FilePath))
	}

	p.logger.InfoContext(ctx, "CSV import completed",
		slog.String("job_id", payload.JobID),
		slog.Int("rows", result.RowsProcessed),
		slog.Int("created", result.WinesCreated),
		slog.Int("rejected", len(result.Errors)))

	return nil
}

func (p *CSVProcessor) importFile(ctx context.Context, payload CSVJobPayload) (*CSVJobResult, error) {
	file, err := os.Open(payload.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	result := &CSVJobResult{}

	// First line is the header.
	for i, record := range records {
		if i == 0 {
			continue
		}
		result.RowsProcessed++

		params, err := parseWineRecord(record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}

		if _, err := p.service.CreateWine(ctx, params); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}
		result.WinesCreated++
	}

	if p.storage != nil {
		key := storage.ArchiveKey(payload.Filename, time.Now())
		if _, err := file.Seek(0, 0); err == nil {
			if _, err := p.storage.Upload(ctx, key, file, "text/csv"); err != nil {
				p.logger.WarnContext(ctx, "failed to archive import file",
					slog.String("key", key),
					slog.String("error", err.Error()))
			} else {
				result.ArchiveKey = key
			}
		}
	}

	return result, nil
}

// parseWineRecord maps a name;year;volume;color;price;comment row onto
// creation parameters.
func parseWineRecord(record []string) (ports.CreateWineParams, error) {
	var params ports.CreateWineParams

	if len(record) < 5 {
		return params, fmt.Errorf("expected at least 5 fields, got %d", len(record))
	}

	params.Name = strings.TrimSpace(record[0])

	year, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return params, fmt.Errorf("invalid year %q", record[1])
	}
	params.Year = year

	volume, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(record[2]), ",", ".", 1), 64)
	if err != nil {
		return params, fmt.Errorf("invalid volume %q", record[2])
	}
	params.Volume = volume

	params.Color = strings.TrimSpace(record[3])

	price, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(record[4]), ",", ".", 1))
	if err != nil {
		return params, fmt.Errorf("invalid price %q", record[4])
	}
	params.Price = price

	if len(record) > 5 {
		params.Comment = strings.TrimSpace(record[5])
	}

	return params, nil
}

func (p *CSVProcessor) updateJobStatus(ctx context.Context, jobID string, status string, errorMsg *string) error {
	query := `
		UPDATE import_jobs
		SET status = $2, error = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, errorMsg)
	return err
}

func (p *CSVProcessor) updateJobResult(ctx context.Context, jobID string, status string, result json.RawMessage) error {
	query := `
		UPDATE import_jobs
		SET status = $2, result = $3, completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, result)
	return err
}
