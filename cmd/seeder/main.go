// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
)

// seedRow is one parsed and validated line of a cellar file.
type seedRow struct {
	wine    *domain.Wine
	comment string
}

// CellarSeeder reads semicolon-separated cellar files and loads them into the
// wine table. Every row goes through domain validation; rejected rows are
// reported and skipped.
type CellarSeeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewCellarSeeder(db *pgxpool.Pool, logger *slog.Logger) *CellarSeeder {
	return &CellarSeeder{
		db:     db,
		logger: logger,
	}
}

// LoadFile parses one cellar file. The first line is a header and is
// discarded. Comma decimals are tolerated in the volume and price columns.
func (s *CellarSeeder) LoadFile(path string) ([]seedRow, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cellar file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read cellar file: %w", err)
	}

	var (
		rows     []seedRow
		rejected []string
	)

	for i, record := range records {
		if i == 0 {
			continue
		}

		row, err := parseCellarRecord(record)
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}
		rows = append(rows, row)
	}

	s.logger.Info("cellar file parsed",
		slog.String("file", filepath.Base(path)),
		slog.Int("rows", len(rows)),
		slog.Int("rejected", len(rejected)))

	return rows, rejected, nil
}

func parseCellarRecord(record []string) (seedRow, error) {
	var row seedRow

	if len(record) < 5 {
		return row, fmt.Errorf("expected at least 5 fields, got %d", len(record))
	}

	name := strings.TrimSpace(record[0])

	year, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return row, fmt.Errorf("invalid year %q", record[1])
	}

	volume, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(record[2]), ",", ".", 1), 64)
	if err != nil {
		return row, fmt.Errorf("invalid volume %q", record[2])
	}

	color := strings.TrimSpace(record[3])

	price, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(record[4]), ",", ".", 1))
	if err != nil {
		return row, fmt.Errorf("invalid price %q", record[4])
	}

	wine, err := domain.NewWine(name, year, volume, color, price)
	if err != nil {
		return row, err
	}

	row.wine = wine
	if len(record) > 5 {
		row.comment = strings.TrimSpace(record[5])
		wine.SetComment(row.comment)
	}

	return row, nil
}

// SaveRows persists the rows in one transaction using a batch insert.
func (s *CellarSeeder) SaveRows(ctx context.Context, rows []seedRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO wine (name, year, volume, color, price, comment)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`,
			row.wine.Name(), row.wine.Year(), row.wine.Volume().Volume(),
			string(row.wine.Color()), row.wine.Price(), row.comment,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert wine: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("wines saved", slog.Int("count", len(rows)))
	return nil
}

func main() {
	var (
		cellarsDir = flag.String("cellars", "./cellars", "Directory containing cellar CSV files")
		stateFile  = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun     = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force      = flag.Bool("force", false, "Reprocess all cellar files")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "winestock"),
		getEnv("DB_PASSWORD", "winestock_dev"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "winestock"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	seeder := NewCellarSeeder(db, logger)

	type seederState struct {
		ProcessedFiles []string  `json:"processed_files"`
		ProcessedCount int       `json:"processed_count"`
		LastUpdate     time.Time `json:"last_update"`
	}

	var state seederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			json.Unmarshal(stateData, &state)
		}
	}

	csvFiles, err := filepath.Glob(filepath.Join(*cellarsDir, "*.csv"))
	if err != nil {
		logger.Error("failed to find cellar files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	totalProcessed := 0
	totalWines := 0
	var failedFiles []string

	for i, csvFile := range csvFiles {
		name := filepath.Base(csvFile)

		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(csvFiles), name)

		if !*force {
			alreadyDone := false
			for _, f := range state.ProcessedFiles {
				if f == name {
					alreadyDone = true
					break
				}
			}
			if alreadyDone {
				logger.Info("skipping already processed file", slog.String("file", name))
				continue
			}
		}

		rows, rejected, err := seeder.LoadFile(csvFile)
		if err != nil {
			logger.Error("failed to load cellar file",
				slog.String("file", name),
				slog.String("error", err.Error()))
			failedFiles = append(failedFiles, name)
			continue
		}

		for _, r := range rejected {
			logger.Warn("rejected row", slog.String("file", name), slog.String("row", r))
		}

		if len(rows) == 0 {
			logger.Warn("no valid wines in file", slog.String("file", name))
			failedFiles = append(failedFiles, fmt.Sprintf("%s (0 wines)", name))
			continue
		}

		if !*dryRun {
			if err := seeder.SaveRows(ctx, rows); err != nil {
				logger.Error("failed to save wines",
					slog.String("file", name),
					slog.String("error", err.Error()))
				failedFiles = append(failedFiles, name)
				continue
			}
		}

		fmt.Printf("SUCCESS: Processed %s - %d wines\n", name, len(rows))

		totalProcessed++
		totalWines += len(rows)

		state.ProcessedFiles = append(state.ProcessedFiles, name)
		state.ProcessedCount = len(state.ProcessedFiles)
		state.LastUpdate = time.Now()

		if !*dryRun && i%10 == 0 {
			stateData, _ := json.MarshalIndent(state, "", "  ")
			os.WriteFile(*stateFile, stateData, 0644)
		}
	}

	if !*dryRun {
		stateData, _ := json.MarshalIndent(state, "", "  ")
		os.WriteFile(*stateFile, stateData, 0644)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Files Processed: %d\n", totalProcessed)
	fmt.Printf("Wines Loaded: %d\n", totalWines)

	if len(failedFiles) > 0 {
		fmt.Printf("\nFailed/Empty Files (%d):\n", len(failedFiles))
		for _, f := range failedFiles {
			fmt.Printf("  - %s\n", f)
		}
	}

	logger.Info("seed operation completed",
		slog.Int("files_processed", totalProcessed),
		slog.Int("wines_created", totalWines),
		slog.Int("failed_files", len(failedFiles)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
