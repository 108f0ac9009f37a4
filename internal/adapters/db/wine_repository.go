// internal/adapters/db/wine_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

const wineColumns = "wno, name, year, volume, color, price, comment, ano"

// WineRepository implements ports.WineRepository on PostgreSQL. Every
// mutation runs in its own explicit transaction.
type WineRepository struct {
	db     *Database
	logger *slog.Logger
}

// Statically assert that *WineRepository implements the port.
var _ ports.WineRepository = (*WineRepository)(nil)

// NewWineRepository creates a new wine repository
func NewWineRepository(db *Database, logger *slog.Logger) *WineRepository {
	return &WineRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "wine")),
	}
}

// Insert stores a new wine and assigns the generated identifier back onto
// the entity.
func (r *WineRepository) Insert(ctx context.Context, wine *domain.Wine) (int64, error) {
	const query = `
		INSERT INTO wine (name, year, volume, color, price, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING wno`

	var id int64
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			wine.Name(), wine.Year(), wine.Volume().Volume(),
			wine.Color(), wine.Price(), wine.Comment(),
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert wine: %w", err)
	}

	wine.SetID(id)

	r.logger.DebugContext(ctx, "wine inserted",
		slog.Int64("wno", id),
		slog.String("name", wine.Name()))

	return id, nil
}

// Update rewrites every column keyed by the wine's identifier. It fails with
// ErrWineNotFound when no row was affected, rolling the transaction back.
func (r *WineRepository) Update(ctx context.Context, wine *domain.Wine) (int64, error) {
	const query = `
		UPDATE wine SET
			name = $2, year = $3, volume = $4, color = $5,
			price = $6, comment = $7
		WHERE wno = $1`

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			wine.ID(), wine.Name(), wine.Year(), wine.Volume().Volume(),
			wine.Color(), wine.Price(), wine.Comment(),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrWineNotFound, wine.ID())
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update wine: %w", err)
	}

	r.logger.DebugContext(ctx, "wine updated", slog.Int64("wno", wine.ID()))

	return wine.ID(), nil
}

// Delete removes the row and reports whether one was affected. The
// transaction commits only when at least one row was deleted.
func (r *WineRepository) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM wine WHERE wno = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrWineNotFound, id)
		}
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete wine: %w", err)
	}

	r.logger.InfoContext(ctx, "wine deleted", slog.Int64("wno", id))

	return true, nil
}

// FindByID retrieves a wine by identifier, or nil when absent.
func (r *WineRepository) FindByID(ctx context.Context, id int64) (*domain.Wine, error) {
	query := fmt.Sprintf(`SELECT %s FROM wine WHERE wno = $1`, wineColumns)

	wine, err := scanWine(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find wine: %w", err)
	}

	return wine, nil
}

// ListUnassigned returns every wine currently outside any assortment. This is
// a read: failures propagate to the caller instead of being absorbed.
func (r *WineRepository) ListUnassigned(ctx context.Context) ([]*domain.Wine, error) {
	query := fmt.Sprintf(`SELECT %s FROM wine WHERE ano IS NULL ORDER BY wno`, wineColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unassigned wines: %w", err)
	}
	defer rows.Close()

	var wines []*domain.Wine
	for rows.Next() {
		wine, err := scanWine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wine: %w", err)
		}
		wines = append(wines, wine)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return wines, nil
}

// List retrieves wines with filtering and pagination.
func (r *WineRepository) List(ctx context.Context, params ports.WineListParams) ([]*domain.Wine, int64, error) {
	qb := squirrel.Select("wno", "name", "year", "volume", "color", "price", "comment", "ano").
		From("wine").
		PlaceholderFormat(squirrel.Dollar)

	if params.Search != "" {
		qb = qb.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Year != nil {
		qb = qb.Where(squirrel.Eq{"year": *params.Year})
	}
	if params.Color != "" {
		qb = qb.Where(squirrel.Eq{"color": params.Color})
	}
	if params.Volume != nil {
		qb = qb.Where(squirrel.Eq{"volume": *params.Volume})
	}
	if params.Unassigned {
		qb = qb.Where("ano IS NULL")
	}

	countQb := qb.Column("COUNT(*) OVER()").Limit(1)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	err = r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount)
	if err != nil && err != pgx.ErrNoRows {
		return nil, 0, fmt.Errorf("failed to count wines: %w", err)
	}

	orderBy := "wno ASC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}

		switch params.SortBy {
		case "name":
			orderBy = fmt.Sprintf("name %s", direction)
		case "year":
			orderBy = fmt.Sprintf("year %s", direction)
		case "price":
			orderBy = fmt.Sprintf("price %s", direction)
		default:
			orderBy = fmt.Sprintf("wno %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query wines: %w", err)
	}
	defer rows.Close()

	var wines []*domain.Wine
	for rows.Next() {
		wine, err := scanWine(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan wine: %w", err)
		}
		wines = append(wines, wine)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return wines, totalCount, nil
}

// Count returns the total number of wine rows.
func (r *WineRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM wine`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wines: %w", err)
	}
	return count, nil
}

// scanWine rebuilds a Wine through the validating constructor, the same path
// rows took on the way in, then restores identifier, comment and membership.
func scanWine(row pgx.Row) (*domain.Wine, error) {
	var (
		id      int64
		name    string
		year    int
		volume  float64
		color   string
		price   decimal.Decimal
		comment sql.NullString
		ano     sql.NullInt64
	)

	if err := row.Scan(&id, &name, &year, &volume, &color, &price, &comment, &ano); err != nil {
		return nil, err
	}

	wine, err := domain.NewWine(name, year, volume, color, price)
	if err != nil {
		return nil, fmt.Errorf("stored wine %d is invalid: %w", id, err)
	}
	wine.SetID(id)
	wine.SetComment(comment.String)
	wine.RestoreMembership(ano.Valid)

	return wine, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrWineNotFound) || errors.Is(err, ErrAssortmentNotFound)
}
