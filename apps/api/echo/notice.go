package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type noticeApi struct{}

func registerNoticeAPI(g *echo.Group, jwt, sess echo.MiddlewareFunc) {
	api := noticeApi{}

	ng := g.Group("/notice", jwt, sess)
	ng.GET("", api.retrieve)
	ng.POST("/logout", api.logout)
}

// Handlers

func (api *noticeApi) retrieve(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Notice.View())
}

func (api *noticeApi) logout(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	p.Notice.Logout()
	return ctx.JSON(http.StatusOK, p.Store.View())
}
