package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/sheet"
)

type sheetRepository struct {
	db *sheetTable
}

var _ sheet.Repository = (*sheetRepository)(nil) // interface compliance check

func NewSheetRepository(db *DB) sheet.Repository {
	return &sheetRepository{db: db.sheet}
}

func copyRows(rows []sheet.Row) []sheet.Row {
	return append(make([]sheet.Row, 0, len(rows)), rows...)
}

func (repo *sheetRepository) QuerySheets(context.Context) ([]sheet.Sheet, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sheets := make([]sheet.Sheet, 0, len(repo.db.rows))
	for _, sht := range repo.db.rows {
		sht.Rows = nil
		sheets = append(sheets, sht)
	}
	return sheets, nil
}

func (repo *sheetRepository) GetSheet(_ context.Context, id string) (sheet.Sheet, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sht := range repo.db.rows {
		if sht.ID == id {
			sht.Rows = copyRows(sht.Rows)
			return sht, nil
		}
	}
	return sheet.Sheet{}, sheet.ErrNotFound
}

func (repo *sheetRepository) SaveRows(_ context.Context, sheetID string, rows []sheet.Row) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.rows {
		if repo.db.rows[i].ID == sheetID {
			repo.db.rows[i].Rows = copyRows(rows)
			return nil
		}
	}
	return sheet.ErrNotFound
}
