package teacher

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

var (
	// errors
	ErrNotFound = errors.New("teacher not found")

	// NowFunc returns the current time; replaced in tests.
	NowFunc = time.Now
)

const coverRequestTemplate = "cover_request"

type (
	Repository interface {
		QueryTeachers(ctx context.Context) ([]Teacher, error)
		GetTeacher(ctx context.Context, id string) (Teacher, error)
		QueryTimetable(ctx context.Context) ([]TimetableSlot, error)
		CreateAbsence(ctx context.Context, absence Absence) (Absence, error)
		// QueryAbsences returns the absences in logging order.
		QueryAbsences(ctx context.Context) ([]Absence, error)
	}

	Service struct {
		repo     Repository
		students student.Repository
		mailSvc  core.EmailService
		logger   core.Logger
	}
)

func NewService(repo Repository, students student.Repository, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{repo: repo, students: students, mailSvc: mailSvc, logger: logger}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Teacher, error) {
	return svc.repo.QueryTeachers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.GetTeacher(ctx, core.CleanString(id))
}

// Timetable builds the weekly timetable grid. Rows are sorted by time range.
func (svc *Service) Timetable(ctx context.Context) (Timetable, error) {
	slots, err := svc.repo.QueryTimetable(ctx)
	if err != nil {
		return Timetable{}, err
	}
	classrooms, err := svc.students.QueryClassrooms(ctx)
	if err != nil {
		return Timetable{}, err
	}
	teachers, err := svc.repo.QueryTeachers(ctx)
	if err != nil {
		return Timetable{}, err
	}
	return buildTimetable(slots, classrooms, teachers), nil
}

func buildTimetable(slots []TimetableSlot, classrooms []student.Classroom, teachers []Teacher) Timetable {
	classroomMap := make(map[string]student.Classroom, len(classrooms))
	for _, c := range classrooms {
		classroomMap[c.ID] = c
	}
	teacherMap := make(map[string]Teacher, len(teachers))
	for _, t := range teachers {
		teacherMap[t.ID] = t
	}

	times := make([]string, 0)
	seen := make(map[string]bool)
	for _, slot := range slots {
		if !seen[slot.Time] {
			seen[slot.Time] = true
			times = append(times, slot.Time)
		}
	}
	sort.Strings(times)

	rows := make([]TimetableRow, 0, len(times))
	for _, tm := range times {
		row := TimetableRow{Time: tm, Cells: make([][]Lesson, len(Weekdays))}
		for i, day := range Weekdays {
			row.Cells[i] = make([]Lesson, 0)
			for _, slot := range slots {
				if slot.Day != day || slot.Time != tm {
					continue
				}
				lesson := Lesson{SlotID: slot.ID, Subject: slot.Subject, ClassroomID: slot.ClassroomID}
				if classroom, ok := classroomMap[slot.ClassroomID]; ok {
					lesson.ClassroomName = classroom.Name
					if tchr, ok := teacherMap[classroom.TeacherID]; ok {
						lesson.TeacherID = tchr.ID
						lesson.TeacherName = tchr.Name
					}
				}
				row.Cells[i] = append(row.Cells[i], lesson)
			}
		}
		rows = append(rows, row)
	}
	return Timetable{Days: Weekdays, Rows: rows}
}

// Absences returns the logged absences, most recent date first.
func (svc *Service) Absences(ctx context.Context) ([]Absence, error) {
	absences, err := svc.repo.QueryAbsences(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(absences, func(i, j int) bool {
		if absences[i].Date != absences[j].Date {
			return absences[i].Date > absences[j].Date
		}
		return absences[i].CreatedAt.After(absences[j].CreatedAt)
	})
	return absences, nil
}

// LogAbsence records a teacher absence & emails a cover request to the cover teacher.
func (svc *Service) LogAbsence(ctx context.Context, na NewAbsence) (Absence, error) {
	absent, err := svc.getTeacher(ctx, na.TeacherID, "teacher_id")
	if err != nil {
		return Absence{}, err
	}
	cover, err := svc.getTeacher(ctx, na.CoverTeacherID, "cover_teacher_id")
	if err != nil {
		return Absence{}, err
	}

	absence, err := svc.repo.CreateAbsence(ctx, Absence{
		ID:             uuid.New().String(),
		TeacherID:      absent.ID,
		Date:           na.Date,
		CoverTeacherID: cover.ID,
		CreatedAt:      NowFunc().UTC(),
	})
	if err != nil {
		return Absence{}, err
	}

	if cover.Email == "" {
		svc.logger.Warn(fmt.Sprintf("cover teacher %s has no email: cover request not sent", cover.ID))
		return absence, nil
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: cover.Name, Address: cover.Email}},
		Subject:      fmt.Sprintf("Cover request for %s on %s", absent.Name, absence.Date),
		TemplateName: coverRequestTemplate,
		TemplateData: map[string]string{
			"CoverTeacher":  cover.Name,
			"AbsentTeacher": absent.Name,
			"Date":          absence.Date,
			"Subject":       absent.Subject,
		},
	})
	return absence, nil
}

func (svc *Service) getTeacher(ctx context.Context, id, field string) (Teacher, error) {
	tchr, err := svc.repo.GetTeacher(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Teacher{}, core.NewFieldError(field, err.Error())
		}
		return Teacher{}, err
	}
	return tchr, nil
}
