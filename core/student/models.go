package student

import (
	"strconv"

	"github.com/trezcool/darasa/core"
)

type Student struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Level       int    `json:"level" db:"level"`
	ClassroomID string `json:"classroom_id" db:"classroom_id"`
}

type Classroom struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Level     int    `json:"level" db:"level"`
	TeacherID string `json:"teacher_id" db:"teacher_id"`
}

// Session is a teaching slot attendance is taken for (eg. "Session 3").
type Session struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// QueryFilter applies an AND operation on its set fields.
type QueryFilter struct {
	Level       string   `query:"level"`
	ClassroomID string   `query:"classroom"`
	IDs         []string `query:"id"`
}

func (qf *QueryFilter) Clean() {
	qf.Level = core.CleanString(qf.Level)
	qf.ClassroomID = core.CleanString(qf.ClassroomID)
	qf.IDs = core.CleanStrings(qf.IDs)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Level == "" && qf.ClassroomID == "" && len(qf.IDs) == 0
}

// Match reports whether stu satisfies every set field of the filter.
// An unparsable Level matches nothing.
func (qf QueryFilter) Match(stu Student) bool {
	if qf.Level != "" {
		lvl, err := strconv.Atoi(qf.Level)
		if err != nil || stu.Level != lvl {
			return false
		}
	}
	if qf.ClassroomID != "" && stu.ClassroomID != qf.ClassroomID {
		return false
	}
	if len(qf.IDs) > 0 {
		for _, id := range qf.IDs {
			if id == stu.ID {
				return true
			}
		}
		return false
	}
	return true
}

// IDs returns the identifiers of students, in order.
func IDs(students []Student) []string {
	ids := make([]string, 0, len(students))
	for _, stu := range students {
		ids = append(ids, stu.ID)
	}
	return ids
}
