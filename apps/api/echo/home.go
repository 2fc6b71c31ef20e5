package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type homeApi struct {
	validate *validator.Validate
}

func registerHomeAPI(g *echo.Group, jwt, sess echo.MiddlewareFunc, validate *validator.Validate) {
	api := homeApi{validate: validate}

	hg := g.Group("/home", jwt, sess)
	hg.GET("", api.retrieve)
	hg.POST("/code", api.requestCode)
	hg.POST("/login", api.login)
	hg.POST("/logout", api.logout)
}

// Handlers

func (api *homeApi) retrieve(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Home.View())
}

func (api *homeApi) requestCode(ctx echo.Context) error {
	var data CodeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CodeRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	if err = p.Home.RequestCode(data.Phone); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Home.View())
}

func (api *homeApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	if _, err = p.Home.Login(data.Code); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Store.View())
}

func (api *homeApi) logout(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	p.Home.Logout()
	return ctx.JSON(http.StatusOK, p.Store.View())
}
