package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/storage/database/seed"
)

// Seed inserts data, skipping the records that already exist.
func Seed(ctx context.Context, db *sqlx.DB, data seed.Data) error {
	return inTx(ctx, db, func(tx *sqlx.Tx) error {
		exec := func(what, q string, arg interface{}) error {
			if _, err := tx.NamedExecContext(ctx, q, arg); err != nil {
				return errors.Wrapf(err, "seeding %s", what)
			}
			return nil
		}

		for _, t := range data.Teachers {
			q := `INSERT INTO teacher (id, name, subject, email) VALUES (:id, :name, :subject, :email)
				ON CONFLICT (id) DO NOTHING`
			if err := exec("teachers", q, t); err != nil {
				return err
			}
		}
		for _, c := range data.Classrooms {
			row := classroomRow{ID: c.ID, Name: c.Name, Level: c.Level, TeacherID: null.NewString(c.TeacherID, c.TeacherID != "")}
			q := `INSERT INTO classroom (id, name, level, teacher_id) VALUES (:id, :name, :level, :teacher_id)
				ON CONFLICT (id) DO NOTHING`
			if err := exec("classrooms", q, row); err != nil {
				return err
			}
		}
		for _, s := range data.Students {
			row := studentRow{ID: s.ID, Name: s.Name, Level: s.Level, ClassroomID: null.NewString(s.ClassroomID, s.ClassroomID != "")}
			q := `INSERT INTO student (id, name, level, classroom_id) VALUES (:id, :name, :level, :classroom_id)
				ON CONFLICT (id) DO NOTHING`
			if err := exec("students", q, row); err != nil {
				return err
			}
		}
		for _, s := range data.Sessions {
			q := "INSERT INTO session (id, name) VALUES (:id, :name) ON CONFLICT (id) DO NOTHING"
			if err := exec("sessions", q, s); err != nil {
				return err
			}
		}
		for _, it := range data.Items {
			q := "INSERT INTO item (id, name, quantity) VALUES (:id, :name, :quantity) ON CONFLICT (id) DO NOTHING"
			if err := exec("items", q, it); err != nil {
				return err
			}
		}
		for _, slot := range data.Timetable {
			q := `INSERT INTO timetable_slot (id, day, time, subject, classroom_id)
				VALUES (:id, :day, :time, :subject, :classroom_id) ON CONFLICT (id) DO NOTHING`
			if err := exec("timetable", q, slot); err != nil {
				return err
			}
		}
		for _, sht := range data.Sheets {
			res, err := tx.NamedExecContext(ctx, "INSERT INTO sheet (id, name) VALUES (:id, :name) ON CONFLICT (id) DO NOTHING", sht)
			if err != nil {
				return errors.Wrap(err, "seeding sheets")
			}
			if n, _ := res.RowsAffected(); n == 0 {
				continue // keep the rows of existing sheets
			}
			if err = insertSheetRows(ctx, tx, sht.ID, sht.Rows); err != nil {
				return err
			}
		}
		return nil
	})
}
