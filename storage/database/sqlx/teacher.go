package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/teacher"
)

type (
	teacherRepository struct {
		db *sqlx.DB
	}

	absenceRow struct {
		ID             string      `db:"id"`
		TeacherID      string      `db:"teacher_id"`
		Date           string      `db:"date"`
		CoverTeacherID null.String `db:"cover_teacher_id"`
		CreatedAt      time.Time   `db:"created_at"`
	}
)

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *sqlx.DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) QueryTeachers(ctx context.Context) ([]teacher.Teacher, error) {
	teachers := make([]teacher.Teacher, 0)
	if err := repo.db.SelectContext(ctx, &teachers, "SELECT id, name, subject, email FROM teacher ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}
	return teachers, nil
}

func (repo *teacherRepository) GetTeacher(ctx context.Context, id string) (teacher.Teacher, error) {
	var tchr teacher.Teacher
	if err := repo.db.GetContext(ctx, &tchr, "SELECT id, name, subject, email FROM teacher WHERE id = $1", id); err != nil {
		return teacher.Teacher{}, trapNoRowsErr(err, teacher.ErrNotFound, "getting teacher")
	}
	return tchr, nil
}

func (repo *teacherRepository) QueryTimetable(ctx context.Context) ([]teacher.TimetableSlot, error) {
	slots := make([]teacher.TimetableSlot, 0)
	q := "SELECT id, day, time, subject, classroom_id FROM timetable_slot ORDER BY seq"
	if err := repo.db.SelectContext(ctx, &slots, q); err != nil {
		return nil, errors.Wrap(err, "querying timetable")
	}
	return slots, nil
}

func (repo *teacherRepository) CreateAbsence(ctx context.Context, absence teacher.Absence) (teacher.Absence, error) {
	row := absenceRow{
		ID:             absence.ID,
		TeacherID:      absence.TeacherID,
		Date:           absence.Date,
		CoverTeacherID: null.NewString(absence.CoverTeacherID, absence.CoverTeacherID != ""),
		CreatedAt:      absence.CreatedAt.UTC(),
	}
	const q = `INSERT INTO teacher_absence (id, teacher_id, date, cover_teacher_id, created_at)
		VALUES (:id, :teacher_id, :date, :cover_teacher_id, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, row); err != nil {
		return teacher.Absence{}, errors.Wrap(err, "inserting teacher absence")
	}
	return absence, nil
}

func (repo *teacherRepository) QueryAbsences(ctx context.Context) ([]teacher.Absence, error) {
	var rows []absenceRow
	q := "SELECT id, teacher_id, date, cover_teacher_id, created_at FROM teacher_absence ORDER BY created_at"
	if err := repo.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, errors.Wrap(err, "querying teacher absences")
	}
	absences := make([]teacher.Absence, 0, len(rows))
	for _, r := range rows {
		absences = append(absences, teacher.Absence{
			ID:             r.ID,
			TeacherID:      r.TeacherID,
			Date:           r.Date,
			CoverTeacherID: r.CoverTeacherID.String,
			CreatedAt:      r.CreatedAt.UTC(),
		})
	}
	return absences, nil
}
