package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/user"
)

type LoginResponse struct {
	Token string `json:"token"`
}

func (s *Server) registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	ug := g.Group("/users")

	// un-authed endpoints
	ug.POST("/login", s.login)

	// authed endpoints
	ag := ug.Group("", jwt)
	ag.POST("/token-refresh", s.refreshTokenHandler)
	ag.GET("/me", s.me)
	ag.POST("/register", s.createUser, adminMiddleware())
}

func (s *Server) login(ctx echo.Context) error {
	var data user.LoginCredentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginCredentials")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}

	rctx := ctx.Request().Context()
	usr, err := s.UserSvc.Authenticate(rctx, data)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}
	if usr, err = s.UserSvc.SetLastLogin(rctx, usr); err != nil {
		return errors.Wrap(err, "setting lastLogin")
	}
	token, err := s.NewToken(usr)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (s *Server) refreshTokenHandler(ctx echo.Context) error {
	token, err := s.refreshToken(ctx)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func (s *Server) me(ctx echo.Context) error {
	usr, err := s.getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (s *Server) createUser(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(s.Validate); err != nil {
		return err
	}

	usr, err := s.UserSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}
