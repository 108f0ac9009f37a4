// internal/adapters/db/assortment_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// AssortmentRepository implements ports.AssortmentRepository on PostgreSQL.
// An assortment row and every member link are written inside one transaction;
// a failed link rolls the whole unit of work back.
type AssortmentRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.AssortmentRepository = (*AssortmentRepository)(nil)

// NewAssortmentRepository creates a new assortment repository
func NewAssortmentRepository(db *Database, logger *slog.Logger) *AssortmentRepository {
	return &AssortmentRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "assortment")),
	}
}

// Insert stores the assortment and links every member in the same
// transaction. Unpersisted members are inserted already linked; persisted
// members have their ano column set. The generated identifier is assigned
// back onto the aggregate.
func (r *AssortmentRepository) Insert(ctx context.Context, assortment *domain.Assortment) (int64, error) {
	year, ok := assortment.Year()
	if !ok {
		return 0, ErrAssortmentNoYear
	}

	var id int64
	assigned := make(map[*domain.Wine]int64)

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO assortment (year) VALUES ($1) RETURNING ano`, year,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert assortment: %w", err)
		}

		for _, wine := range assortment.Wines() {
			if wine.ID() == domain.UnpersistedID {
				var wno int64
				err := tx.QueryRow(ctx, `
					INSERT INTO wine (name, year, volume, color, price, comment, ano)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
					RETURNING wno`,
					wine.Name(), wine.Year(), wine.Volume().Volume(),
					wine.Color(), wine.Price(), wine.Comment(), id,
				).Scan(&wno)
				if err != nil {
					return fmt.Errorf("failed to insert member wine: %w", err)
				}
				assigned[wine] = wno
				continue
			}

			tag, err := tx.Exec(ctx,
				`UPDATE wine SET ano = $1 WHERE wno = $2`, id, wine.ID())
			if err != nil {
				return fmt.Errorf("failed to link wine %d: %w", wine.ID(), err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: %d", ErrWineNotFound, wine.ID())
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	// Assign identifiers only after the transaction committed.
	assortment.SetID(id)
	for wine, wno := range assigned {
		wine.SetID(wno)
	}

	r.logger.InfoContext(ctx, "assortment inserted",
		slog.Int64("ano", id),
		slog.Int("wines", assortment.Size()))

	return id, nil
}

// FindAll rebuilds every stored assortment. Members are re-added through the
// aggregate's own Add so invariants are re-derived rather than trusted from
// storage; a member the aggregate rejects is logged and skipped.
func (r *AssortmentRepository) FindAll(ctx context.Context) ([]*domain.Assortment, error) {
	rows, err := r.db.Query(ctx, `SELECT ano, year FROM assortment ORDER BY ano`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assortments: %w", err)
	}

	type header struct {
		id   int64
		year int
	}
	var headers []header
	for rows.Next() {
		var h header
		if err := rows.Scan(&h.id, &h.year); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan assortment: %w", err)
		}
		headers = append(headers, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	assortments := make([]*domain.Assortment, 0, len(headers))
	for _, h := range headers {
		assortment, err := r.loadMembers(ctx, h.id)
		if err != nil {
			return nil, err
		}
		assortments = append(assortments, assortment)
	}

	return assortments, nil
}

// FindByID retrieves one assortment, or nil when absent.
func (r *AssortmentRepository) FindByID(ctx context.Context, id int64) (*domain.Assortment, error) {
	var ano int64
	err := r.db.QueryRow(ctx, `SELECT ano FROM assortment WHERE ano = $1`, id).Scan(&ano)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find assortment: %w", err)
	}

	return r.loadMembers(ctx, ano)
}

// Delete unlinks every member and removes the assortment row in one
// transaction. It reports whether a row was deleted.
func (r *AssortmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE wine SET ano = NULL WHERE ano = $1`, id); err != nil {
			return fmt.Errorf("failed to unlink wines: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM assortment WHERE ano = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrAssortmentNotFound, id)
		}
		return nil
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete assortment: %w", err)
	}

	r.logger.InfoContext(ctx, "assortment deleted", slog.Int64("ano", id))

	return true, nil
}

// RemoveWine unlinks a single wine from whatever assortment holds it. It
// reports whether the wine was linked at all.
func (r *AssortmentRepository) RemoveWine(ctx context.Context, wineID int64) (bool, error) {
	var affected int64
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE wine SET ano = NULL WHERE wno = $1 AND ano IS NOT NULL`, wineID)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to unlink wine: %w", err)
	}

	if affected == 0 {
		return false, nil
	}

	r.logger.DebugContext(ctx, "wine unlinked from assortment", slog.Int64("wno", wineID))

	return true, nil
}

// loadMembers rebuilds one aggregate from its linked wine rows.
func (r *AssortmentRepository) loadMembers(ctx context.Context, id int64) (*domain.Assortment, error) {
	query := fmt.Sprintf(`SELECT %s FROM wine WHERE ano = $1 ORDER BY wno`, wineColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query assortment wines: %w", err)
	}
	defer rows.Close()

	assortment := domain.NewAssortmentWithID(id)
	for rows.Next() {
		wine, err := scanWine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wine: %w", err)
		}

		// Membership is established through Add below, not taken from the row.
		wine.RestoreMembership(false)

		if err := assortment.Add(wine); err != nil {
			r.logger.WarnContext(ctx, "stored wine rejected by assortment",
				slog.Int64("ano", id),
				slog.Int64("wno", wine.ID()),
				slog.String("error", err.Error()))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return assortment, nil
}
