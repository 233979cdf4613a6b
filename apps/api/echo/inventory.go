package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/inventory"
)

func (s *Server) registerInventoryAPI(g *echo.Group) {
	g.GET("", s.queryItems)
	g.GET("/:id", s.retrieveItem)
	g.PUT("/:id/quantity", s.setItemQuantity)
	g.POST("/:id/adjust", s.adjustItem)
}

func (s *Server) queryItems(ctx echo.Context) error {
	items, err := s.InventorySvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying items")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (s *Server) retrieveItem(ctx echo.Context) error {
	item, err := s.InventorySvc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding item by ID")
	}
	return ctx.JSON(http.StatusOK, item)
}

func (s *Server) setItemQuantity(ctx echo.Context) error {
	var data inventory.SetQuantity
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to inventory.SetQuantity")
	}
	if err := s.Validate.Struct(data); err != nil {
		return err
	}
	item, err := s.InventorySvc.SetQuantity(ctx.Request().Context(), ctx.Param("id"), *data.Quantity)
	if err != nil {
		return errors.Wrap(err, "setting item quantity")
	}
	return ctx.JSON(http.StatusOK, item)
}

func (s *Server) adjustItem(ctx echo.Context) error {
	var data inventory.Adjustment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to inventory.Adjustment")
	}
	if err := s.Validate.Struct(data); err != nil {
		return err
	}
	item, err := s.InventorySvc.Adjust(ctx.Request().Context(), ctx.Param("id"), data.Delta)
	if err != nil {
		return errors.Wrap(err, "adjusting item quantity")
	}
	return ctx.JSON(http.StatusOK, item)
}
