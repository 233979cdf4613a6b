package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/sheet"
)

type (
	sheetRepository struct {
		db *sqlx.DB
	}

	sheetRowRow struct {
		sheet.Row
		SheetID  string `db:"sheet_id"`
		Position int    `db:"position"`
	}
)

var _ sheet.Repository = (*sheetRepository)(nil) // interface compliance check

func NewSheetRepository(db *sqlx.DB) sheet.Repository {
	return &sheetRepository{db: db}
}

func (repo *sheetRepository) QuerySheets(ctx context.Context) ([]sheet.Sheet, error) {
	sheets := make([]sheet.Sheet, 0)
	if err := repo.db.SelectContext(ctx, &sheets, "SELECT id, name FROM sheet ORDER BY seq"); err != nil {
		return nil, errors.Wrap(err, "querying sheets")
	}
	return sheets, nil
}

func (repo *sheetRepository) GetSheet(ctx context.Context, id string) (sheet.Sheet, error) {
	var sht sheet.Sheet
	if err := repo.db.GetContext(ctx, &sht, "SELECT id, name FROM sheet WHERE id = $1", id); err != nil {
		return sheet.Sheet{}, trapNoRowsErr(err, sheet.ErrNotFound, "getting sheet")
	}
	sht.Rows = make([]sheet.Row, 0)
	q := "SELECT id, col_a, col_b, col_c, col_d, col_e FROM sheet_row WHERE sheet_id = $1 ORDER BY position"
	if err := repo.db.SelectContext(ctx, &sht.Rows, q, id); err != nil {
		return sheet.Sheet{}, errors.Wrap(err, "querying sheet rows")
	}
	return sht, nil
}

func (repo *sheetRepository) SaveRows(ctx context.Context, sheetID string, rows []sheet.Row) error {
	return inTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "UPDATE sheet SET name = name WHERE id = $1", sheetID)
		if err != nil {
			return errors.Wrap(err, "locking sheet")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return sheet.ErrNotFound
		}
		if _, err = tx.ExecContext(ctx, "DELETE FROM sheet_row WHERE sheet_id = $1", sheetID); err != nil {
			return errors.Wrap(err, "deleting sheet rows")
		}
		return insertSheetRows(ctx, tx, sheetID, rows)
	})
}

func insertSheetRows(ctx context.Context, tx *sqlx.Tx, sheetID string, rows []sheet.Row) error {
	const q = `INSERT INTO sheet_row (sheet_id, position, id, col_a, col_b, col_c, col_d, col_e)
		VALUES (:sheet_id, :position, :id, :col_a, :col_b, :col_c, :col_d, :col_e)`
	for i, row := range rows {
		if _, err := tx.NamedExecContext(ctx, q, sheetRowRow{Row: row, SheetID: sheetID, Position: i}); err != nil {
			return errors.Wrap(err, "inserting sheet row")
		}
	}
	return nil
}
