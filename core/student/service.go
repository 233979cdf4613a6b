package student

import (
	"context"
	"errors"
	"sort"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound          = errors.New("student not found")
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrSessionNotFound   = errors.New("session not found")
)

type (
	Repository interface {
		// QueryStudents returns the students matching filter in their registration order.
		QueryStudents(ctx context.Context, filter QueryFilter) ([]Student, error)
		GetStudent(ctx context.Context, id string) (Student, error)
		QueryClassrooms(ctx context.Context) ([]Classroom, error)
		GetClassroom(ctx context.Context, id string) (Classroom, error)
		QuerySessions(ctx context.Context) ([]Session, error)
		GetSession(ctx context.Context, id string) (Session, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Student, error) {
	filter.Clean()
	return svc.repo.QueryStudents(ctx, filter)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudent(ctx, core.CleanString(id))
}

// Levels returns the distinct levels of all students, ascending.
func (svc *Service) Levels(ctx context.Context) ([]int, error) {
	students, err := svc.repo.QueryStudents(ctx, QueryFilter{})
	if err != nil {
		return nil, err
	}
	seen := make(map[int]struct{})
	levels := make([]int, 0)
	for _, stu := range students {
		if _, ok := seen[stu.Level]; !ok {
			seen[stu.Level] = struct{}{}
			levels = append(levels, stu.Level)
		}
	}
	sort.Ints(levels)
	return levels, nil
}

func (svc *Service) Classrooms(ctx context.Context) ([]Classroom, error) {
	return svc.repo.QueryClassrooms(ctx)
}

func (svc *Service) GetClassroom(ctx context.Context, id string) (Classroom, error) {
	return svc.repo.GetClassroom(ctx, core.CleanString(id))
}

// ClassroomRoster returns the students enrolled in the classroom with the given id.
func (svc *Service) ClassroomRoster(ctx context.Context, classroomID string) (Classroom, []Student, error) {
	classroom, err := svc.GetClassroom(ctx, classroomID)
	if err != nil {
		return Classroom{}, nil, err
	}
	students, err := svc.repo.QueryStudents(ctx, QueryFilter{ClassroomID: classroom.ID})
	if err != nil {
		return Classroom{}, nil, err
	}
	return classroom, students, nil
}

func (svc *Service) Sessions(ctx context.Context) ([]Session, error) {
	return svc.repo.QuerySessions(ctx)
}

func (svc *Service) GetSession(ctx context.Context, id string) (Session, error) {
	return svc.repo.GetSession(ctx, core.CleanString(id))
}
