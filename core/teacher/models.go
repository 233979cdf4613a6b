package teacher

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

type Teacher struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Subject string `json:"subject" db:"subject"`
	Email   string `json:"email" db:"email"`
}

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays are the days of the school week, in order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

func (d Weekday) IsValid() bool {
	for _, wd := range Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// TimetableSlot is a lesson given to a classroom every week.
type TimetableSlot struct {
	ID          string  `json:"id" db:"id"`
	Day         Weekday `json:"day" db:"day" validate:"required,weekday"`
	Time        string  `json:"time" db:"time" validate:"required,timerange"` // eg. "09:00 - 10:00"
	Subject     string  `json:"subject" db:"subject" validate:"notblank"`
	ClassroomID string  `json:"classroom_id" db:"classroom_id" validate:"required"`
}

// Lesson is a TimetableSlot along with the names of its classroom & teacher.
type Lesson struct {
	SlotID        string `json:"slot_id"`
	Subject       string `json:"subject"`
	ClassroomID   string `json:"classroom_id"`
	ClassroomName string `json:"classroom_name"`
	TeacherID     string `json:"teacher_id,omitempty"`
	TeacherName   string `json:"teacher_name,omitempty"`
}

type TimetableRow struct {
	Time  string     `json:"time"`
	Cells [][]Lesson `json:"cells"` // one cell per Timetable.Days entry
}

// Timetable is the weekly grid of lessons: one row per time range, one column per weekday.
type Timetable struct {
	Days []Weekday      `json:"days"`
	Rows []TimetableRow `json:"rows"`
}

// Absence is a teacher absence along with the teacher assigned to cover it.
type Absence struct {
	ID             string    `json:"id" db:"id"`
	TeacherID      string    `json:"teacher_id" db:"teacher_id"`
	Date           string    `json:"date" db:"date"`
	CoverTeacherID string    `json:"cover_teacher_id,omitempty" db:"cover_teacher_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"` // UTC
}

type NewAbsence struct {
	TeacherID      string `json:"teacher_id" validate:"required"`
	Date           string `json:"date" validate:"required,isodate"`
	CoverTeacherID string `json:"cover_teacher_id" validate:"required,nefield=TeacherID"`
}

func (na *NewAbsence) Validate(validate *validator.Validate) error {
	na.TeacherID = core.CleanString(na.TeacherID)
	na.Date = core.CleanString(na.Date)
	na.CoverTeacherID = core.CleanString(na.CoverTeacherID)
	return validate.Struct(na)
}
