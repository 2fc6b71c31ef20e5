package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type resourceApi struct {
	validate *validator.Validate
}

func registerResourceAPI(g *echo.Group, jwt, sess echo.MiddlewareFunc, validate *validator.Validate) {
	api := resourceApi{validate: validate}

	rg := g.Group("/resources", jwt, sess)
	rg.GET("", api.retrieve)
	rg.PUT("/filter", api.filter)
	rg.POST("/upload", api.upload)
	rg.POST("/files/:id/download", api.download)
}

// Handlers

func (api *resourceApi) retrieve(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Resources.View())
}

func (api *resourceApi) filter(ctx echo.Context) error {
	var data SubjectRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubjectRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	if err = p.Resources.SelectSubject(data.Subject); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Resources.View())
}

func (api *resourceApi) download(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	file, err := p.Resources.Download(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, file)
}

// upload responds with the new file once the upload is done.
func (api *resourceApi) upload(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	tsk, err := p.Resources.Upload()
	if err != nil {
		return err
	}
	file, err := tsk.Wait(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "uploading file")
	}
	return ctx.JSON(http.StatusCreated, file)
}
