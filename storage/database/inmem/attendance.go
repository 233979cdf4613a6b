package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) QueryLedger(context.Context) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]attendance.Record, 0, len(repo.db.ledger)), repo.db.ledger...), nil
}

func (repo *attendanceRepository) SaveLedger(_ context.Context, ledger []attendance.Record) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.ledger = append(make([]attendance.Record, 0, len(ledger)), ledger...)
	return nil
}

func (repo *attendanceRepository) CreateAbsenceReport(_ context.Context, report attendance.AbsenceReport) (attendance.AbsenceReport, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.reports = append(repo.db.reports, report)
	return report, nil
}

func (repo *attendanceRepository) QueryAbsenceReports(context.Context) ([]attendance.AbsenceReport, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]attendance.AbsenceReport, 0, len(repo.db.reports)), repo.db.reports...), nil
}
