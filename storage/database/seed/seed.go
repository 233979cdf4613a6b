// Package seed holds the sample records a fresh school database starts with.
package seed

import (
	"fmt"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/inventory"
	"github.com/trezcool/darasa/core/sheet"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/teacher"
)

// Data is a set of records to load in a store.
type Data struct {
	Teachers   []teacher.Teacher
	Classrooms []student.Classroom
	Students   []student.Student
	Sessions   []student.Session
	Items      []inventory.Item
	Timetable  []teacher.TimetableSlot
	Sheets     []sheet.Sheet
}

// Sample returns the sample school: 4 teachers, 3 classrooms, 36 students, 10 sessions,
// 10 inventory items, 8 timetable slots & 10 data sheets.
func Sample() Data {
	data := Data{
		Teachers: []teacher.Teacher{
			{ID: "T1", Name: "Mr. John Smith", Subject: "Mathematics", Email: "john.smith@darasa.school"},
			{ID: "T2", Name: "Ms. Emily Johnson", Subject: "Science", Email: "emily.johnson@darasa.school"},
			{ID: "T3", Name: "Mrs. Sarah Davis", Subject: "English", Email: "sarah.davis@darasa.school"},
			{ID: "T4", Name: "Mr. Robert Brown", Subject: "History", Email: "robert.brown@darasa.school"},
		},
		Classrooms: []student.Classroom{
			{ID: "C1", Name: "Class 1A", Level: 1, TeacherID: "T1"},
			{ID: "C2", Name: "Class 1B", Level: 1, TeacherID: "T2"},
			{ID: "C3", Name: "Class 2A", Level: 2, TeacherID: "T3"},
		},
		Items: []inventory.Item{
			{ID: "I1", Name: "Whiteboard Markers", Quantity: 50},
			{ID: "I2", Name: "Notebooks", Quantity: 200},
			{ID: "I3", Name: "Pens", Quantity: 300},
			{ID: "I4", Name: "Projector", Quantity: 5},
			{ID: "I5", Name: "Textbooks - Math", Quantity: 150},
			{ID: "I6", Name: "Textbooks - Science", Quantity: 150},
			{ID: "I7", Name: "First Aid Kits", Quantity: 10},
			{ID: "I8", Name: "Chairs", Quantity: 250},
			{ID: "I9", Name: "Desks", Quantity: 250},
			{ID: "I10", Name: "Laptops", Quantity: 25},
		},
		Timetable: []teacher.TimetableSlot{
			{ID: "TT1", Day: teacher.Monday, Time: "09:00 - 10:00", Subject: "Mathematics", ClassroomID: "C1"},
			{ID: "TT2", Day: teacher.Monday, Time: "10:00 - 11:00", Subject: "Science", ClassroomID: "C1"},
			{ID: "TT3", Day: teacher.Monday, Time: "09:00 - 10:00", Subject: "Science", ClassroomID: "C2"},
			{ID: "TT4", Day: teacher.Monday, Time: "10:00 - 11:00", Subject: "Mathematics", ClassroomID: "C2"},
			{ID: "TT5", Day: teacher.Monday, Time: "09:00 - 10:00", Subject: "English", ClassroomID: "C3"},
			{ID: "TT6", Day: teacher.Monday, Time: "10:00 - 11:00", Subject: "History", ClassroomID: "C3"},
			{ID: "TT7", Day: teacher.Tuesday, Time: "09:00 - 10:00", Subject: "English", ClassroomID: "C1"},
			{ID: "TT8", Day: teacher.Tuesday, Time: "10:00 - 11:00", Subject: "History", ClassroomID: "C1"},
		},
	}

	// level 1: 11 students in C1 & 10 in C2; level 2: 15 students in C3
	addStudents := func(from, count, level int, classroomID string) {
		for i := from; i < from+count; i++ {
			data.Students = append(data.Students, student.Student{
				ID:          fmt.Sprintf("S%d", i),
				Name:        fmt.Sprintf("Student %d", i),
				Level:       level,
				ClassroomID: classroomID,
			})
		}
	}
	addStudents(1, 11, 1, "C1")
	addStudents(12, 10, 1, "C2")
	addStudents(22, 15, 2, "C3")

	for i := 1; i <= 10; i++ {
		data.Sessions = append(data.Sessions, student.Session{
			ID:   fmt.Sprintf("SES%d", i),
			Name: fmt.Sprintf("Session %d", i),
		})
	}

	today := time.Now().Format(core.DateLayout)
	for i := 0; i < 10; i++ {
		data.Sheets = append(data.Sheets, sheet.Sheet{
			ID:   fmt.Sprintf("DS%d", i+1),
			Name: fmt.Sprintf("Sheet %d", i+1),
			Rows: []sheet.Row{
				{ID: fmt.Sprintf("R1-%d", i), ColA: fmt.Sprintf("Sample A%d", i+1), ColB: fmt.Sprintf("Sample B%d", i+1), ColC: "100", ColD: "Yes", ColE: today},
				{ID: fmt.Sprintf("R2-%d", i), ColA: fmt.Sprintf("Sample C%d", i+1), ColB: fmt.Sprintf("Sample D%d", i+1), ColC: "250", ColD: "No", ColE: today},
			},
		})
	}
	return data
}
