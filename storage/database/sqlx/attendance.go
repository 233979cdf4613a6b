package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/attendance"
)

type attendanceRepository struct {
	db *sqlx.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *sqlx.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) QueryLedger(ctx context.Context) ([]attendance.Record, error) {
	ledger := make([]attendance.Record, 0)
	q := "SELECT student_id, session_id, date, status FROM attendance ORDER BY seq"
	if err := repo.db.SelectContext(ctx, &ledger, q); err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	return ledger, nil
}

// SaveLedger writes the records of ledger that are new or changed.
// Records keep the position of their first insertion.
func (repo *attendanceRepository) SaveLedger(ctx context.Context, ledger []attendance.Record) error {
	return inTx(ctx, repo.db, func(tx *sqlx.Tx) error {
		var current []attendance.Record
		if err := tx.SelectContext(ctx, &current, "SELECT student_id, session_id, date, status FROM attendance FOR UPDATE"); err != nil {
			return errors.Wrap(err, "locking attendance")
		}
		statuses := make(map[attendance.Key]attendance.Status, len(current))
		for _, rec := range current {
			statuses[rec.Key()] = rec.Status
		}

		const q = `INSERT INTO attendance (student_id, session_id, date, status)
			VALUES (:student_id, :session_id, :date, :status)
			ON CONFLICT (student_id, date, session_id) DO UPDATE SET status = EXCLUDED.status`
		for _, rec := range ledger {
			if status, ok := statuses[rec.Key()]; ok && status == rec.Status {
				continue
			}
			if _, err := tx.NamedExecContext(ctx, q, rec); err != nil {
				return errors.Wrap(err, "saving attendance record")
			}
		}
		return nil
	})
}

func (repo *attendanceRepository) CreateAbsenceReport(ctx context.Context, report attendance.AbsenceReport) (attendance.AbsenceReport, error) {
	const q = `INSERT INTO absence_report (id, student_id, date, reason, reported_at)
		VALUES (:id, :student_id, :date, :reason, :reported_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, report); err != nil {
		return attendance.AbsenceReport{}, errors.Wrap(err, "inserting absence report")
	}
	return report, nil
}

func (repo *attendanceRepository) QueryAbsenceReports(ctx context.Context) ([]attendance.AbsenceReport, error) {
	reports := make([]attendance.AbsenceReport, 0)
	q := "SELECT id, student_id, date, reason, reported_at FROM absence_report ORDER BY reported_at"
	if err := repo.db.SelectContext(ctx, &reports, q); err != nil {
		return nil, errors.Wrap(err, "querying absence reports")
	}
	return reports, nil
}
