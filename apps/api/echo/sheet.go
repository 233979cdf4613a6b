package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/sheet"
)

func (s *Server) registerSheetAPI(g *echo.Group) {
	g.GET("", s.querySheets)
	g.GET("/:id", s.retrieveSheet)
	g.PUT("/:id/rows", s.replaceSheetRows)
	g.POST("/:id/rows", s.addSheetRow)
	g.PATCH("/:id/rows/:rowID", s.updateSheetCell)
	g.DELETE("/:id/rows/:rowID", s.deleteSheetRow)
}

func (s *Server) querySheets(ctx echo.Context) error {
	sheets, err := s.SheetSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying sheets")
	}
	return ctx.JSON(http.StatusOK, sheets)
}

func (s *Server) retrieveSheet(ctx echo.Context) error {
	sht, err := s.SheetSvc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding sheet by ID")
	}
	return ctx.JSON(http.StatusOK, sht)
}

func (s *Server) replaceSheetRows(ctx echo.Context) error {
	var data sheet.ReplaceRows
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to sheet.ReplaceRows")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}
	sht, err := s.SheetSvc.ReplaceRows(ctx.Request().Context(), ctx.Param("id"), data.Rows)
	if err != nil {
		return errors.Wrap(err, "replacing sheet rows")
	}
	return ctx.JSON(http.StatusOK, sht)
}

func (s *Server) addSheetRow(ctx echo.Context) error {
	sht, err := s.SheetSvc.AddRow(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "adding sheet row")
	}
	return ctx.JSON(http.StatusCreated, sht)
}

func (s *Server) updateSheetCell(ctx echo.Context) error {
	var data sheet.UpdateCell
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to sheet.UpdateCell")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}
	sht, err := s.SheetSvc.UpdateCell(ctx.Request().Context(), ctx.Param("id"), ctx.Param("rowID"), data)
	if err != nil {
		return errors.Wrap(err, "updating sheet cell")
	}
	return ctx.JSON(http.StatusOK, sht)
}

func (s *Server) deleteSheetRow(ctx echo.Context) error {
	sht, err := s.SheetSvc.DeleteRow(ctx.Request().Context(), ctx.Param("id"), ctx.Param("rowID"))
	if err != nil {
		return errors.Wrap(err, "deleting sheet row")
	}
	return ctx.JSON(http.StatusOK, sht)
}
