package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) QueryStudents(_ context.Context, filter student.QueryFilter) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]student.Student, 0)
	for _, stu := range repo.db.students {
		if filter.Match(stu) {
			students = append(students, stu)
		}
	}
	return students, nil
}

func (repo *studentRepository) GetStudent(_ context.Context, id string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, stu := range repo.db.students {
		if stu.ID == id {
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) QueryClassrooms(context.Context) ([]student.Classroom, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]student.Classroom, 0, len(repo.db.classrooms)), repo.db.classrooms...), nil
}

func (repo *studentRepository) GetClassroom(_ context.Context, id string) (student.Classroom, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, c := range repo.db.classrooms {
		if c.ID == id {
			return c, nil
		}
	}
	return student.Classroom{}, student.ErrClassroomNotFound
}

func (repo *studentRepository) QuerySessions(context.Context) ([]student.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]student.Session, 0, len(repo.db.sessions)), repo.db.sessions...), nil
}

func (repo *studentRepository) GetSession(_ context.Context, id string) (student.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, ses := range repo.db.sessions {
		if ses.ID == id {
			return ses, nil
		}
	}
	return student.Session{}, student.ErrSessionNotFound
}
