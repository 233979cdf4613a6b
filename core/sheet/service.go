package sheet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound    = errors.New("sheet not found")
	ErrRowNotFound = errors.New("row not found")
)

type (
	Repository interface {
		// QuerySheets returns the sheets without their rows.
		QuerySheets(ctx context.Context) ([]Sheet, error)
		GetSheet(ctx context.Context, id string) (Sheet, error)
		SaveRows(ctx context.Context, sheetID string, rows []Row) error
	}

	Service struct {
		repo Repository
		mu   sync.Mutex
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Sheet, error) {
	return svc.repo.QuerySheets(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Sheet, error) {
	return svc.repo.GetSheet(ctx, core.CleanString(id))
}

// ReplaceRows replaces all the rows of a sheet. Row IDs must be unique.
func (svc *Service) ReplaceRows(ctx context.Context, id string, rows []Row) (Sheet, error) {
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		if seen[row.ID] {
			return Sheet{}, core.NewFieldError(fmt.Sprintf("rows[%d].id", i), "duplicate row id")
		}
		seen[row.ID] = true
	}
	if rows == nil {
		rows = make([]Row, 0)
	}
	return svc.update(ctx, id, func(Sheet) ([]Row, error) { return rows, nil })
}

// AddRow appends an empty row to a sheet.
func (svc *Service) AddRow(ctx context.Context, id string) (Sheet, error) {
	return svc.update(ctx, id, func(sht Sheet) ([]Row, error) {
		return append(sht.Rows, Row{ID: uuid.New().String()}), nil
	})
}

func (svc *Service) DeleteRow(ctx context.Context, id, rowID string) (Sheet, error) {
	return svc.update(ctx, id, func(sht Sheet) ([]Row, error) {
		rows := make([]Row, 0, len(sht.Rows))
		for _, row := range sht.Rows {
			if row.ID != rowID {
				rows = append(rows, row)
			}
		}
		if len(rows) == len(sht.Rows) {
			return nil, ErrRowNotFound
		}
		return rows, nil
	})
}

func (svc *Service) UpdateCell(ctx context.Context, id, rowID string, uc UpdateCell) (Sheet, error) {
	return svc.update(ctx, id, func(sht Sheet) ([]Row, error) {
		for i := range sht.Rows {
			if sht.Rows[i].ID == rowID {
				if !sht.Rows[i].Set(uc.Column, uc.Value) {
					return nil, core.NewFieldError("column", "unknown column")
				}
				return sht.Rows, nil
			}
		}
		return nil, ErrRowNotFound
	})
}

func (svc *Service) update(ctx context.Context, id string, fn func(Sheet) ([]Row, error)) (Sheet, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	sht, err := svc.repo.GetSheet(ctx, core.CleanString(id))
	if err != nil {
		return Sheet{}, err
	}
	rows, err := fn(sht)
	if err != nil {
		return Sheet{}, err
	}
	if err = svc.repo.SaveRows(ctx, sht.ID, rows); err != nil {
		return Sheet{}, err
	}
	sht.Rows = rows
	return sht, nil
}
