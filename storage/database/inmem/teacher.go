package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) QueryTeachers(context.Context) ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]teacher.Teacher, 0, len(repo.db.teachers)), repo.db.teachers...), nil
}

func (repo *teacherRepository) GetTeacher(_ context.Context, id string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, t := range repo.db.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) QueryTimetable(context.Context) ([]teacher.TimetableSlot, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]teacher.TimetableSlot, 0, len(repo.db.timetable)), repo.db.timetable...), nil
}

func (repo *teacherRepository) CreateAbsence(_ context.Context, absence teacher.Absence) (teacher.Absence, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.absences = append(repo.db.absences, absence)
	return absence, nil
}

func (repo *teacherRepository) QueryAbsences(context.Context) ([]teacher.Absence, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]teacher.Absence, 0, len(repo.db.absences)), repo.db.absences...), nil
}
