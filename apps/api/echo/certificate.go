package echoapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/certificate"
)

func (s *Server) registerCertificateAPI(g *echo.Group) {
	g.GET("/:studentID", s.downloadCertificate)
	g.GET("/:studentID/preview", s.previewCertificate)
}

// bindCertificateRequest reads the certificate options of the query string.
func (s *Server) bindCertificateRequest(ctx echo.Context) (certificate.Request, error) {
	req := certificate.Request{
		StudentID:      ctx.Param("studentID"),
		CompletionDate: ctx.QueryParam("date"),
		Format:         ctx.QueryParam("format"),
	}
	if lvl := ctx.QueryParam("level"); lvl != "" {
		n, err := strconv.Atoi(lvl)
		if err != nil {
			return req, core.NewFieldError("level", "level must be a number")
		}
		req.Level = n
	}
	if show := ctx.QueryParam("show_id"); show != "" {
		b, err := strconv.ParseBool(show)
		if err != nil {
			return req, core.NewFieldError("show_id", "show_id must be a boolean")
		}
		req.ShowStudentID = &b
	}
	if err := req.Validate(s.Validate); err != nil {
		return req, err
	}
	return req, nil
}

func (s *Server) previewCertificate(ctx echo.Context) error {
	req, err := s.bindCertificateRequest(ctx)
	if err != nil {
		return err
	}
	cert, err := s.CertificateSvc.Prepare(ctx.Request().Context(), req)
	if err != nil {
		return errors.Wrap(err, "preparing certificate")
	}
	return ctx.JSON(http.StatusOK, cert)
}

func (s *Server) downloadCertificate(ctx echo.Context) error {
	req, err := s.bindCertificateRequest(ctx)
	if err != nil {
		return err
	}
	renderer, err := s.CertificateSvc.Renderer(req.Format)
	if err != nil {
		return err
	}
	cert, err := s.CertificateSvc.Prepare(ctx.Request().Context(), req)
	if err != nil {
		return errors.Wrap(err, "preparing certificate")
	}

	var buf bytes.Buffer
	if err = renderer.Render(&buf, cert); err != nil {
		return errors.Wrap(err, "rendering certificate")
	}
	ctx.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", cert.Filename(renderer.Format())),
	)
	return ctx.Blob(http.StatusOK, renderer.ContentType(), buf.Bytes())
}
