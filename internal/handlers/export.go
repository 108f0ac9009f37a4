// internal/handlers/export.go
package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// ExportParams holds the filters applied to an export.
type ExportParams struct {
	Year       *int
	Color      string
	Unassigned bool
	Format     string
}

// WineExportRow is one flattened wine row as it appears in export files.
type WineExportRow struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Year         int             `json:"year"`
	Volume       float64         `json:"volume"`
	Color        string          `json:"color"`
	Price        decimal.Decimal `json:"price"`
	Comment      *string         `json:"comment,omitempty"`
	AssortmentID *int64          `json:"assortment_id,omitempty"`
}

var exportHeaders = []string{"ID", "Name", "Year", "Volume (cl)", "Color", "Price", "Comment", "Assortment"}

// ExportHandler produces spreadsheet and CSV snapshots of the cellar.
type ExportHandler struct {
	db     ports.Database
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(db ports.Database, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		db:     db,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := h.parseExportParams(r)

	rows, err := h.getWineData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load export data",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to export wines")
		return
	}

	data, err := h.generateExcelFile(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("winestock_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// ExportCSV handles GET /api/v1/export/csv. The output uses the same
// semicolon-separated layout the import pipeline accepts.
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := h.parseExportParams(r)

	rows, err := h.getWineData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load export data",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to export wines")
		return
	}

	filename := fmt.Sprintf("winestock_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	writer.Write([]string{"name", "year", "volume", "color", "price", "comment"})
	for _, row := range rows {
		comment := ""
		if row.Comment != nil {
			comment = *row.Comment
		}
		writer.Write([]string{
			row.Name,
			strconv.Itoa(row.Year),
			strconv.FormatFloat(row.Volume, 'f', -1, 64),
			row.Color,
			row.Price.StringFixed(2),
			comment,
		})
	}
	writer.Flush()
}

// ExportJSON handles GET /api/v1/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := h.parseExportParams(r)

	rows, err := h.getWineData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load export data",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to export wines")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"exported_at": time.Now().UTC(),
		"count":       len(rows),
		"wines":       rows,
	})
}

func (h *ExportHandler) parseExportParams(r *http.Request) *ExportParams {
	q := r.URL.Query()

	params := &ExportParams{
		Color:  q.Get("color"),
		Format: q.Get("format"),
	}

	if year, err := strconv.Atoi(q.Get("year")); err == nil {
		params.Year = &year
	}
	if unassigned, err := strconv.ParseBool(q.Get("unassigned")); err == nil {
		params.Unassigned = unassigned
	}

	return params
}

func (h *ExportHandler) getWineData(ctx context.Context, params *ExportParams) ([]WineExportRow, error) {
	qb := squirrel.Select("wno", "name", "year", "volume", "color", "price", "comment", "ano").
		From("wine").
		OrderBy("wno").
		PlaceholderFormat(squirrel.Dollar)

	if params.Year != nil {
		qb = qb.Where(squirrel.Eq{"year": *params.Year})
	}
	if params.Color != "" {
		qb = qb.Where(squirrel.Eq{"color": params.Color})
	}
	if params.Unassigned {
		qb = qb.Where("ano IS NULL")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := h.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wines: %w", err)
	}
	defer rows.Close()

	var out []WineExportRow
	for rows.Next() {
		var row WineExportRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Year, &row.Volume,
			&row.Color, &row.Price, &row.Comment, &row.AssortmentID); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func (h *ExportHandler) generateExcelFile(data []WineExportRow) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Wines")
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range exportHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, row := range data {
		r := sheet.AddRow()
		r.AddCell().SetInt64(row.ID)
		r.AddCell().Value = row.Name
		r.AddCell().SetInt(row.Year)
		r.AddCell().SetFloat(row.Volume)
		r.AddCell().Value = row.Color
		r.AddCell().Value = row.Price.StringFixed(2)
		if row.Comment != nil {
			r.AddCell().Value = *row.Comment
		} else {
			r.AddCell().Value = ""
		}
		if row.AssortmentID != nil {
			r.AddCell().SetInt64(*row.AssortmentID)
		} else {
			r.AddCell().Value = ""
		}
	}

	var buf writerBuffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.data, nil
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

type writerBuffer struct {
	data []byte
}

func (b *writerBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
