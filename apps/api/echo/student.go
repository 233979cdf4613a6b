package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/student"
)

type ClassroomRoster struct {
	student.Classroom
	Students []student.Student `json:"students"`
}

func (s *Server) registerStudentAPI(g *echo.Group) {
	g.GET("/students", s.queryStudents)
	g.GET("/students/levels", s.queryLevels)
	g.GET("/students/:id", s.retrieveStudent)

	g.GET("/classrooms", s.queryClassrooms)
	g.GET("/classrooms/:id/students", s.classroomRoster)

	g.GET("/sessions", s.querySessions)
}

func (s *Server) queryStudents(ctx echo.Context) error {
	filter := new(student.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []student.Student{})
	}
	students, err := s.StudentSvc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (s *Server) queryLevels(ctx echo.Context) error {
	levels, err := s.StudentSvc.Levels(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying levels")
	}
	return ctx.JSON(http.StatusOK, levels)
}

func (s *Server) retrieveStudent(ctx echo.Context) error {
	stu, err := s.StudentSvc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	return ctx.JSON(http.StatusOK, stu)
}

func (s *Server) queryClassrooms(ctx echo.Context) error {
	classrooms, err := s.StudentSvc.Classrooms(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying classrooms")
	}
	return ctx.JSON(http.StatusOK, classrooms)
}

func (s *Server) classroomRoster(ctx echo.Context) error {
	classroom, students, err := s.StudentSvc.ClassroomRoster(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying classroom roster")
	}
	return ctx.JSON(http.StatusOK, ClassroomRoster{Classroom: classroom, Students: students})
}

func (s *Server) querySessions(ctx echo.Context) error {
	sessions, err := s.StudentSvc.Sessions(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying sessions")
	}
	return ctx.JSON(http.StatusOK, sessions)
}
