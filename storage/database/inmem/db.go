// Package inmemdb keeps the school records in process memory.
package inmemdb

import (
	"sync"

	"github.com/trezcool/darasa/core/attendance"
	"github.com/trezcool/darasa/core/inventory"
	"github.com/trezcool/darasa/core/sheet"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/teacher"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/storage/database/seed"
)

type (
	// DB holds one table per record type. Tables keep insertion order.
	DB struct {
		user       *userTable
		student    *studentTable
		attendance *attendanceTable
		teacher    *teacherTable
		item       *itemTable
		sheet      *sheetTable
	}

	userTable struct {
		sync.RWMutex
		rows []user.User
	}

	studentTable struct {
		sync.RWMutex
		students   []student.Student
		classrooms []student.Classroom
		sessions   []student.Session
	}

	attendanceTable struct {
		sync.RWMutex
		ledger  []attendance.Record
		reports []attendance.AbsenceReport
	}

	teacherTable struct {
		sync.RWMutex
		teachers  []teacher.Teacher
		timetable []teacher.TimetableSlot
		absences  []teacher.Absence
	}

	itemTable struct {
		sync.RWMutex
		rows []inventory.Item
	}

	sheetTable struct {
		sync.RWMutex
		rows []sheet.Sheet
	}
)

// New returns an empty DB.
func New() *DB {
	return &DB{
		user:       new(userTable),
		student:    new(studentTable),
		attendance: new(attendanceTable),
		teacher:    new(teacherTable),
		item:       new(itemTable),
		sheet:      new(sheetTable),
	}
}

// NewSeeded returns a DB loaded with the sample school.
func NewSeeded() *DB {
	db := New()
	db.Load(seed.Sample())
	return db
}

// Load replaces the seedable tables with data. Users & attendance are left untouched.
func (db *DB) Load(data seed.Data) {
	db.student.Lock()
	db.student.students = append([]student.Student(nil), data.Students...)
	db.student.classrooms = append([]student.Classroom(nil), data.Classrooms...)
	db.student.sessions = append([]student.Session(nil), data.Sessions...)
	db.student.Unlock()

	db.teacher.Lock()
	db.teacher.teachers = append([]teacher.Teacher(nil), data.Teachers...)
	db.teacher.timetable = append([]teacher.TimetableSlot(nil), data.Timetable...)
	db.teacher.Unlock()

	db.item.Lock()
	db.item.rows = append([]inventory.Item(nil), data.Items...)
	db.item.Unlock()

	db.sheet.Lock()
	db.sheet.rows = make([]sheet.Sheet, 0, len(data.Sheets))
	for _, sht := range data.Sheets {
		sht.Rows = copyRows(sht.Rows)
		db.sheet.rows = append(db.sheet.rows, sht)
	}
	db.sheet.Unlock()
}

// Reset empties every table.
func (db *DB) Reset() {
	db.Load(seed.Data{})

	db.user.Lock()
	db.user.rows = nil
	db.user.Unlock()

	db.attendance.Lock()
	db.attendance.ledger = nil
	db.attendance.reports = nil
	db.attendance.Unlock()

	db.teacher.Lock()
	db.teacher.absences = nil
	db.teacher.Unlock()
}
