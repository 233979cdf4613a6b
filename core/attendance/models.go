package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// DefaultHoursPerSession is the duration credited for every session a student attended.
const DefaultHoursPerSession = 1.5

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

var AllStatuses = []Status{StatusPresent, StatusAbsent}

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Key is the composite identity of a Record: no two records of a ledger share it.
type Key struct {
	StudentID string
	Date      string
	SessionID string
}

// Record is one student's status for one session on one date.
type Record struct {
	StudentID string `json:"student_id" db:"student_id"`
	SessionID string `json:"session_id" db:"session_id"`
	Date      string `json:"date" db:"date"` // YYYY-MM-DD
	Status    Status `json:"status" db:"status"`
}

func (r Record) Key() Key {
	return Key{StudentID: r.StudentID, Date: r.Date, SessionID: r.SessionID}
}

// Tally is the attendance summary of one student.
type Tally struct {
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Hours   float64 `json:"hours"`
}

func (t Tally) Total() int { return t.Present + t.Absent }

// Summary maps student IDs to their Tally.
type Summary map[string]Tally

// Mark is the status decided for one student in a Submission.
type Mark struct {
	StudentID string `json:"student_id" validate:"required"`
	Status    Status `json:"status" validate:"required,attstatus"`
}

// Submission is a batch of status decisions for a classroom, session & date.
type Submission struct {
	ClassroomID string `json:"classroom_id"`
	SessionID   string `json:"session_id" validate:"required"`
	Date        string `json:"date" validate:"required,isodate"`
	Marks       []Mark `json:"marks" validate:"dive"`
}

func (sub *Submission) Validate(validate *validator.Validate) error {
	sub.ClassroomID = core.CleanString(sub.ClassroomID)
	sub.SessionID = core.CleanString(sub.SessionID)
	sub.Date = core.CleanString(sub.Date)
	for i := range sub.Marks {
		sub.Marks[i].StudentID = core.CleanString(sub.Marks[i].StudentID)
		sub.Marks[i].Status = Status(core.CleanString(string(sub.Marks[i].Status), true /* lower */))
	}
	return validate.Struct(sub)
}

// Records turns the submission into attendance records, in mark order.
func (sub Submission) Records() []Record {
	records := make([]Record, 0, len(sub.Marks))
	for _, m := range sub.Marks {
		records = append(records, Record{
			StudentID: m.StudentID,
			SessionID: sub.SessionID,
			Date:      sub.Date,
			Status:    m.Status,
		})
	}
	return records
}

// MarkAll gives the same status to every student of a classroom.
type MarkAll struct {
	ClassroomID string `json:"classroom_id" validate:"required"`
	SessionID   string `json:"session_id" validate:"required"`
	Date        string `json:"date" validate:"required,isodate"`
	Status      Status `json:"status" validate:"required,attstatus"`
}

func (ma *MarkAll) Validate(validate *validator.Validate) error {
	ma.ClassroomID = core.CleanString(ma.ClassroomID)
	ma.SessionID = core.CleanString(ma.SessionID)
	ma.Date = core.CleanString(ma.Date)
	ma.Status = Status(core.CleanString(string(ma.Status), true /* lower */))
	return validate.Struct(ma)
}

type QueryFilter struct {
	Date      string `json:"date" query:"date" validate:"omitempty,isodate"`
	SessionID string `json:"session" query:"session"`
	StudentID string `json:"student" query:"student"`
}

func (qf *QueryFilter) Clean() {
	qf.Date = core.CleanString(qf.Date)
	qf.SessionID = core.CleanString(qf.SessionID)
	qf.StudentID = core.CleanString(qf.StudentID)
}

func (qf QueryFilter) Match(r Record) bool {
	return (qf.Date == "" || r.Date == qf.Date) &&
		(qf.SessionID == "" || r.SessionID == qf.SessionID) &&
		(qf.StudentID == "" || r.StudentID == qf.StudentID)
}

// RegisterEntry is a line of the attendance register: a student of the classroom
// with the status recorded for the session & date, if any.
type RegisterEntry struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Status    Status `json:"status,omitempty"`
}

type RegisterQuery struct {
	ClassroomID string `json:"classroom" query:"classroom" validate:"required"`
	SessionID   string `json:"session" query:"session" validate:"required"`
	Date        string `json:"date" query:"date" validate:"required,isodate"`
}

func (rq *RegisterQuery) Validate(validate *validator.Validate) error {
	rq.ClassroomID = core.CleanString(rq.ClassroomID)
	rq.SessionID = core.CleanString(rq.SessionID)
	rq.Date = core.CleanString(rq.Date)
	return validate.Struct(rq)
}

// AbsenceReport is a student absence reported ahead of (or after) the register being taken.
// It has no effect on the ledger.
type AbsenceReport struct {
	ID         string    `json:"id" db:"id"`
	StudentID  string    `json:"student_id" db:"student_id"`
	Date       string    `json:"date" db:"date"`
	Reason     string    `json:"reason" db:"reason"`
	ReportedAt time.Time `json:"reported_at" db:"reported_at"` // UTC
}

type NewAbsenceReport struct {
	StudentID string `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Reason    string `json:"reason" validate:"max=500"`
}

func (nr *NewAbsenceReport) Validate(validate *validator.Validate) error {
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.Date = core.CleanString(nr.Date)
	nr.Reason = core.CleanString(nr.Reason)
	return validate.Struct(nr)
}
