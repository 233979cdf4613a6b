package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

// NowFunc returns the current time; replaced in tests.
var NowFunc = time.Now

type (
	Repository interface {
		// QueryLedger returns the whole attendance ledger, in order.
		QueryLedger(ctx context.Context) ([]Record, error)
		// SaveLedger stores ledger as the new attendance ledger.
		SaveLedger(ctx context.Context, ledger []Record) error
		CreateAbsenceReport(ctx context.Context, report AbsenceReport) (AbsenceReport, error)
		// QueryAbsenceReports returns the absence reports, in reporting order.
		QueryAbsenceReports(ctx context.Context) ([]AbsenceReport, error)
	}

	// Service holds the attendance ledger. Writes to the ledger are serialized.
	Service struct {
		repo            Repository
		students        student.Repository
		hoursPerSession float64

		mu sync.Mutex
	}
)

func NewService(repo Repository, students student.Repository, conf *core.Config) *Service {
	hps := conf.Attendance.HoursPerSession
	if hps <= 0 {
		hps = DefaultHoursPerSession
	}
	return &Service{repo: repo, students: students, hoursPerSession: hps}
}

func (svc *Service) HoursPerSession() float64 {
	return svc.hoursPerSession
}

// Submit records the marks of sub in the ledger and returns the reconciled ledger.
// A submission without marks leaves the ledger untouched.
func (svc *Service) Submit(ctx context.Context, sub Submission) ([]Record, error) {
	if len(sub.Marks) == 0 {
		return svc.repo.QueryLedger(ctx)
	}
	if err := svc.checkSession(ctx, sub.SessionID); err != nil {
		return nil, err
	}
	if sub.ClassroomID != "" {
		if err := svc.checkClassroom(ctx, sub.ClassroomID); err != nil {
			return nil, err
		}
	}
	for i, m := range sub.Marks {
		if _, err := svc.students.GetStudent(ctx, m.StudentID); err != nil {
			if errors.Is(err, student.ErrNotFound) {
				return nil, core.NewFieldError(fmt.Sprintf("marks[%d].student_id", i), err.Error())
			}
			return nil, err
		}
	}
	return svc.record(ctx, sub.Records())
}

// MarkAll gives ma.Status to every student of the classroom.
func (svc *Service) MarkAll(ctx context.Context, ma MarkAll) ([]Record, error) {
	if err := svc.checkClassroom(ctx, ma.ClassroomID); err != nil {
		return nil, err
	}
	roster, err := svc.students.QueryStudents(ctx, student.QueryFilter{ClassroomID: ma.ClassroomID})
	if err != nil {
		return nil, err
	}
	sub := Submission{
		ClassroomID: ma.ClassroomID,
		SessionID:   ma.SessionID,
		Date:        ma.Date,
		Marks:       make([]Mark, 0, len(roster)),
	}
	for _, stu := range roster {
		sub.Marks = append(sub.Marks, Mark{StudentID: stu.ID, Status: ma.Status})
	}
	return svc.Submit(ctx, sub)
}

func (svc *Service) record(ctx context.Context, records []Record) ([]Record, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	ledger, err := svc.repo.QueryLedger(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading ledger")
	}
	ledger = Upsert(ledger, records)
	if err = svc.repo.SaveLedger(ctx, ledger); err != nil {
		return nil, errors.Wrap(err, "saving ledger")
	}
	return ledger, nil
}

// Query returns the ledger records matching filter, in ledger order.
func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Record, error) {
	filter.Clean()
	ledger, err := svc.repo.QueryLedger(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0)
	for _, rec := range ledger {
		if filter.Match(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Register lists the students of a classroom with the status recorded for the session & date.
func (svc *Service) Register(ctx context.Context, rq RegisterQuery) ([]RegisterEntry, error) {
	if _, err := svc.students.GetClassroom(ctx, rq.ClassroomID); err != nil {
		return nil, err
	}
	if _, err := svc.students.GetSession(ctx, rq.SessionID); err != nil {
		return nil, err
	}
	roster, err := svc.students.QueryStudents(ctx, student.QueryFilter{ClassroomID: rq.ClassroomID})
	if err != nil {
		return nil, err
	}
	ledger, err := svc.repo.QueryLedger(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make(map[Key]Status)
	for _, rec := range ledger {
		statuses[rec.Key()] = rec.Status
	}
	entries := make([]RegisterEntry, 0, len(roster))
	for _, stu := range roster {
		entries = append(entries, RegisterEntry{
			StudentID: stu.ID,
			Name:      stu.Name,
			Status:    statuses[Key{StudentID: stu.ID, Date: rq.Date, SessionID: rq.SessionID}],
		})
	}
	return entries, nil
}

// Summary summarizes the ledger for the given students, or for all students when none is given.
func (svc *Service) Summary(ctx context.Context, roster ...string) (Summary, error) {
	roster = core.CleanStrings(roster)
	if len(roster) == 0 {
		students, err := svc.students.QueryStudents(ctx, student.QueryFilter{})
		if err != nil {
			return nil, err
		}
		roster = student.IDs(students)
	}
	ledger, err := svc.repo.QueryLedger(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(roster, ledger, svc.hoursPerSession), nil
}

// StudentHours returns the attendance hours credited to a student.
func (svc *Service) StudentHours(ctx context.Context, studentID string) (float64, error) {
	stu, err := svc.students.GetStudent(ctx, core.CleanString(studentID))
	if err != nil {
		return 0, err
	}
	summary, err := svc.Summary(ctx, stu.ID)
	if err != nil {
		return 0, err
	}
	return summary[stu.ID].Hours, nil
}

// ReportAbsence files a student absence report. The ledger is not affected.
func (svc *Service) ReportAbsence(ctx context.Context, nr NewAbsenceReport) (AbsenceReport, error) {
	if _, err := svc.students.GetStudent(ctx, nr.StudentID); err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return AbsenceReport{}, core.NewFieldError("student_id", err.Error())
		}
		return AbsenceReport{}, err
	}
	return svc.repo.CreateAbsenceReport(ctx, AbsenceReport{
		ID:         uuid.New().String(),
		StudentID:  nr.StudentID,
		Date:       nr.Date,
		Reason:     nr.Reason,
		ReportedAt: NowFunc().UTC(),
	})
}

func (svc *Service) AbsenceReports(ctx context.Context) ([]AbsenceReport, error) {
	return svc.repo.QueryAbsenceReports(ctx)
}

func (svc *Service) checkSession(ctx context.Context, id string) error {
	if _, err := svc.students.GetSession(ctx, id); err != nil {
		if errors.Is(err, student.ErrSessionNotFound) {
			return core.NewFieldError("session_id", err.Error())
		}
		return err
	}
	return nil
}

func (svc *Service) checkClassroom(ctx context.Context, id string) error {
	if _, err := svc.students.GetClassroom(ctx, id); err != nil {
		if errors.Is(err, student.ErrClassroomNotFound) {
			return core.NewFieldError("classroom_id", err.Error())
		}
		return err
	}
	return nil
}
