package certificate

import (
	"context"
	"io"
	"time"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

// NowFunc returns the current time; replaced in tests.
var NowFunc = time.Now

type (
	// HoursCounter returns the attendance hours credited to a student.
	HoursCounter interface {
		StudentHours(ctx context.Context, studentID string) (float64, error)
	}

	// Renderer writes a certificate document.
	Renderer interface {
		Format() string
		ContentType() string
		Render(w io.Writer, cert Certificate) error
	}

	Service struct {
		students  student.Repository
		hours     HoursCounter
		renderers map[string]Renderer
	}
)

func NewService(students student.Repository, hours HoursCounter) *Service {
	svc := &Service{students: students, hours: hours, renderers: make(map[string]Renderer)}
	for _, r := range []Renderer{NewPDFRenderer(), NewPNGRenderer()} {
		svc.renderers[r.Format()] = r
	}
	return svc
}

// Prepare builds the certificate of a student. The level defaults to the student's level,
// the completion date to today and the student ID is shown unless asked otherwise.
func (svc *Service) Prepare(ctx context.Context, req Request) (Certificate, error) {
	stu, err := svc.students.GetStudent(ctx, req.StudentID)
	if err != nil {
		return Certificate{}, err
	}
	hours, err := svc.hours.StudentHours(ctx, stu.ID)
	if err != nil {
		return Certificate{}, err
	}

	cert := Certificate{
		StudentName:     stu.Name,
		StudentID:       stu.ID,
		ShowStudentID:   req.ShowStudentID == nil || *req.ShowStudentID,
		Level:           req.Level,
		CompletionDate:  req.CompletionDate,
		AttendanceHours: hours,
	}
	if cert.Level == 0 {
		cert.Level = stu.Level
	}
	if cert.CompletionDate == "" {
		cert.CompletionDate = NowFunc().Format(core.DateLayout)
	}
	return cert, nil
}

// Renderer returns the renderer of format; PDF when format is empty.
func (svc *Service) Renderer(format string) (Renderer, error) {
	if format == "" {
		format = FormatPDF
	}
	r, ok := svc.renderers[format]
	if !ok {
		return nil, core.NewFieldError("format", "unsupported format: "+format)
	}
	return r, nil
}
