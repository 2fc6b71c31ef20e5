package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/portal"
)

type sessionApi struct {
	svc  *portal.Service
	conf *core.Config
}

func registerSessionAPI(g *echo.Group, jwt, sess echo.MiddlewareFunc, svc *portal.Service, conf *core.Config) {
	api := sessionApi{svc: svc, conf: conf}

	// un-authed endpoints
	g.POST("/sessions", api.create)

	// authed endpoints
	ag := g.Group("", jwt, sess)
	ag.GET("/session", api.retrieve)
	ag.DELETE("/session", api.destroy)
	ag.GET("/notifications", api.notifications)
}

// Handlers

func (api *sessionApi) create(ctx echo.Context) error {
	sess, err := api.svc.Open()
	if err != nil {
		return errors.Wrap(err, "opening session")
	}
	claims := GetSessionClaims(sess, api.conf, api.svc.Clock())
	token, err := GenerateToken(claims, api.conf.SecretKey)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, SessionResponse{Token: token, ExpiresAt: time.Unix(claims.ExpiresAt, 0).UTC()})
}

func (api *sessionApi) retrieve(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Store.View())
}

// destroy ends the session; its token is no longer accepted.
func (api *sessionApi) destroy(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Close(sess.ID); err != nil {
		return errors.Wrap(err, "closing session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// notifications returns and clears the pending notifications of the session.
func (api *sessionApi) notifications(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Notifications.Drain())
}
