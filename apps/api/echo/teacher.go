package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/teacher"
)

func (s *Server) registerTeacherAPI(g *echo.Group) {
	g.GET("/teachers", s.queryTeachers)
	g.GET("/teachers/absences", s.queryTeacherAbsences)
	g.POST("/teachers/absences", s.logTeacherAbsence)
	g.GET("/timetable", s.timetable)
}

func (s *Server) queryTeachers(ctx echo.Context) error {
	teachers, err := s.TeacherSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (s *Server) timetable(ctx echo.Context) error {
	tt, err := s.TeacherSvc.Timetable(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building timetable")
	}
	return ctx.JSON(http.StatusOK, tt)
}

func (s *Server) queryTeacherAbsences(ctx echo.Context) error {
	absences, err := s.TeacherSvc.Absences(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying teacher absences")
	}
	return ctx.JSON(http.StatusOK, absences)
}

func (s *Server) logTeacherAbsence(ctx echo.Context) error {
	var data teacher.NewAbsence
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to teacher.NewAbsence")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}
	absence, err := s.TeacherSvc.LogAbsence(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "logging teacher absence")
	}
	return ctx.JSON(http.StatusCreated, absence)
}
