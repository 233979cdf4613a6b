package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/attendance"
)

// SummaryResponse is the attendance summary of a set of students.
type SummaryResponse struct {
	HoursPerSession float64            `json:"hours_per_session"`
	Students        attendance.Summary `json:"students"`
}

func (s *Server) registerAttendanceAPI(g *echo.Group) {
	g.GET("", s.queryAttendance)
	g.POST("", s.submitAttendance)
	g.POST("/mark-all", s.markAllAttendance)
	g.GET("/register", s.attendanceRegister)
	g.GET("/summary", s.attendanceSummary)
	g.GET("/absence-reports", s.queryAbsenceReports)
	g.POST("/absence-reports", s.reportAbsence)
}

func (s *Server) queryAttendance(ctx echo.Context) error {
	var filter attendance.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to attendance.QueryFilter")
	}
	filter.Clean()
	if err := s.Validate.Struct(filter); err != nil {
		return err
	}
	records, err := s.AttendanceSvc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, records)
}

func (s *Server) submitAttendance(ctx echo.Context) error {
	var data attendance.Submission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to attendance.Submission")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}
	ledger, err := s.AttendanceSvc.Submit(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting attendance")
	}
	return ctx.JSON(http.StatusOK, ledger)
}

func (s *Server) markAllAttendance(ctx echo.Context) error {
	var data attendance.MarkAll
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to attendance.MarkAll")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}
	ledger, err := s.AttendanceSvc.MarkAll(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "marking all attendance")
	}
	return ctx.JSON(http.StatusOK, ledger)
}

func (s *Server) attendanceRegister(ctx echo.Context) error {
	var query attendance.RegisterQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to attendance.RegisterQuery")
	}
	if err := query.Validate(s.Validate); err != nil {
		return err
	}
	entries, err := s.AttendanceSvc.Register(ctx.Request().Context(), query)
	if err != nil {
		return errors.Wrap(err, "querying attendance register")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (s *Server) attendanceSummary(ctx echo.Context) error {
	summary, err := s.AttendanceSvc.Summary(ctx.Request().Context(), ctx.QueryParams()["student"]...)
	if err != nil {
		return errors.Wrap(err, "summarizing attendance")
	}
	return ctx.JSON(http.StatusOK, SummaryResponse{
		HoursPerSession: s.AttendanceSvc.HoursPerSession(),
		Students:        summary,
	})
}

func (s *Server) queryAbsenceReports(ctx echo.Context) error {
	reports, err := s.AttendanceSvc.AbsenceReports(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying absence reports")
	}
	return ctx.JSON(http.StatusOK, reports)
}

func (s *Server) reportAbsence(ctx echo.Context) error {
	var data attendance.NewAbsenceReport
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to attendance.NewAbsenceReport")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}
	report, err := s.AttendanceSvc.ReportAbsence(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "reporting absence")
	}
	return ctx.JSON(http.StatusCreated, report)
}
