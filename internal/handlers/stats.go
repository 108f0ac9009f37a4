// internal/handlers/stats.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

const cacheKeyCellarStats = "stats:cellar"

// CellarStats is an aggregate snapshot of the cellar.
type CellarStats struct {
	TotalWines      int64                      `json:"total_wines"`
	TotalValue      decimal.Decimal            `json:"total_value"`
	UnassignedWines int64                      `json:"unassigned_wines"`
	Assortments     int64                      `json:"assortments"`
	ByColor         map[string]int64           `json:"by_color"`
	ByYear          map[int]int64              `json:"by_year"`
	ValueByColor    map[string]decimal.Decimal `json:"value_by_color"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}

// StatsHandler serves aggregate cellar statistics. Results are cached
// briefly since the queries touch every wine row.
type StatsHandler struct {
	db     ports.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(db ports.Database, cache ports.CacheRepository, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(slog.String("handler", "stats")),
	}
}

// CellarStats handles GET /api/v1/stats
func (h *StatsHandler) CellarStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cached CellarStats
	if err := h.cache.Get(ctx, cacheKeyCellarStats, &cached); err == nil {
		h.respondJSON(w, http.StatusOK, cached)
		return
	}

	stats, err := h.collectStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to collect cellar stats",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	if err := h.cache.SetWithTTL(ctx, cacheKeyCellarStats, stats, time.Minute); err != nil {
		h.logger.WarnContext(ctx, "failed to cache cellar stats",
			slog.String("error", err.Error()))
	}

	h.respondJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) collectStats(ctx context.Context) (*CellarStats, error) {
	stats := &CellarStats{
		ByColor:      make(map[string]int64),
		ByYear:       make(map[int]int64),
		ValueByColor: make(map[string]decimal.Decimal),
		TotalValue:   decimal.Zero,
		GeneratedAt:  time.Now().UTC(),
	}

	err := h.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(price), 0),
		       COUNT(*) FILTER (WHERE ano IS NULL)
		FROM wine`).
		Scan(&stats.TotalWines, &stats.TotalValue, &stats.UnassignedWines)
	if err != nil {
		return nil, fmt.Errorf("failed to query wine totals: %w", err)
	}

	if err := h.db.QueryRow(ctx, `SELECT COUNT(*) FROM assortment`).
		Scan(&stats.Assortments); err != nil {
		return nil, fmt.Errorf("failed to count assortments: %w", err)
	}

	rows, err := h.db.Query(ctx, `
		SELECT color, COUNT(*), COALESCE(SUM(price), 0)
		FROM wine
		GROUP BY color`)
	if err != nil {
		return nil, fmt.Errorf("failed to query color breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			color string
			count int64
			value decimal.Decimal
		)
		if err := rows.Scan(&color, &count, &value); err != nil {
			return nil, fmt.Errorf("failed to scan color row: %w", err)
		}
		stats.ByColor[color] = count
		stats.ValueByColor[color] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	yearRows, err := h.db.Query(ctx, `
		SELECT year, COUNT(*)
		FROM wine
		GROUP BY year
		ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("failed to query year breakdown: %w", err)
	}
	defer yearRows.Close()

	for yearRows.Next() {
		var (
			year  int
			count int64
		)
		if err := yearRows.Scan(&year, &count); err != nil {
			return nil, fmt.Errorf("failed to scan year row: %w", err)
		}
		stats.ByYear[year] = count
	}

	return stats, yearRows.Err()
}

func (h *StatsHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (h *StatsHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
