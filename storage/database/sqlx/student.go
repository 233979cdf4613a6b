package sqlxrepos

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/student"
)

type (
	studentRepository struct {
		db *sqlx.DB
	}

	studentRow struct {
		ID          string      `db:"id"`
		Name        string      `db:"name"`
		Level       int         `db:"level"`
		ClassroomID null.String `db:"classroom_id"`
	}

	classroomRow struct {
		ID        string      `db:"id"`
		Name      string      `db:"name"`
		Level     int         `db:"level"`
		TeacherID null.String `db:"teacher_id"`
	}
)

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (r studentRow) model() student.Student {
	return student.Student{ID: r.ID, Name: r.Name, Level: r.Level, ClassroomID: r.ClassroomID.String}
}

func (r classroomRow) model() student.Classroom {
	return student.Classroom{ID: r.ID, Name: r.Name, Level: r.Level, TeacherID: r.TeacherID.String}
}

func (repo *studentRepository) QueryStudents(ctx context.Context, filter student.QueryFilter) ([]student.Student, error) {
	q := "SELECT id, name, level, classroom_id FROM student WHERE TRUE"
	args := make([]interface{}, 0, 3)
	if filter.Level != "" {
		lvl, err := strconv.Atoi(filter.Level)
		if err != nil {
			return make([]student.Student, 0), nil
		}
		q += " AND level = ?"
		args = append(args, lvl)
	}
	if filter.ClassroomID != "" {
		q += " AND classroom_id = ?"
		args = append(args, filter.ClassroomID)
	}
	if len(filter.IDs) > 0 {
		q += " AND id IN (?)"
		args = append(args, filter.IDs)
	}
	q, args, err := sqlx.In(q+" ORDER BY seq", args...)
	if err != nil {
		return nil, errors.Wrap(err, "building students query")
	}

	var rows []studentRow
	if err = repo.db.SelectContext(ctx, &rows, repo.db.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]student.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, r.model())
	}
	return students, nil
}

func (repo *studentRepository) GetStudent(ctx context.Context, id string) (student.Student, error) {
	var row studentRow
	err := repo.db.GetContext(ctx, &row, "SELECT id, name, level, classroom_id FROM student WHERE id = $1", id)
	if err != nil {
		return student.Student{}, trapNoRowsErr(err, student.ErrNotFound, "getting student")
	}
	return row.model(), nil
}

func (repo *studentRepository) QueryClassrooms(ctx context.Context) ([]student.Classroom, error) {
	var rows []classroomRow
	if err := repo.db.SelectContext(ctx, &rows, "SELECT id, name, level, teacher_id FROM classroom ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "querying classrooms")
	}
	classrooms := make([]student.Classroom, 0, len(rows))
	for _, r := range rows {
		classrooms = append(classrooms, r.model())
	}
	return classrooms, nil
}

func (repo *studentRepository) GetClassroom(ctx context.Context, id string) (student.Classroom, error) {
	var row classroomRow
	err := repo.db.GetContext(ctx, &row, "SELECT id, name, level, teacher_id FROM classroom WHERE id = $1", id)
	if err != nil {
		return student.Classroom{}, trapNoRowsErr(err, student.ErrClassroomNotFound, "getting classroom")
	}
	return row.model(), nil
}

func (repo *studentRepository) QuerySessions(ctx context.Context) ([]student.Session, error) {
	sessions := make([]student.Session, 0)
	if err := repo.db.SelectContext(ctx, &sessions, "SELECT id, name FROM session ORDER BY seq"); err != nil {
		return nil, errors.Wrap(err, "querying sessions")
	}
	return sessions, nil
}

func (repo *studentRepository) GetSession(ctx context.Context, id string) (student.Session, error) {
	var ses student.Session
	if err := repo.db.GetContext(ctx, &ses, "SELECT id, name FROM session WHERE id = $1", id); err != nil {
		return student.Session{}, trapNoRowsErr(err, student.ErrSessionNotFound, "getting session")
	}
	return ses, nil
}
