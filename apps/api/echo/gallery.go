package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type galleryApi struct {
	validate *validator.Validate
}

func registerGalleryAPI(g *echo.Group, jwt, sess echo.MiddlewareFunc, validate *validator.Validate) {
	api := galleryApi{validate: validate}

	gg := g.Group("/gallery", jwt, sess)
	gg.GET("", api.retrieve)
	gg.PUT("/filter", api.filter)
	gg.POST("/load-more", api.loadMore)
	gg.GET("/photos/:id", api.photo)
	gg.POST("/photos/:id/like", api.like)
}

// Handlers

func (api *galleryApi) retrieve(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Gallery.View())
}

func (api *galleryApi) filter(ctx echo.Context) error {
	var data CategoryRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CategoryRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	if err = p.Gallery.SelectCategory(data.Category); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p.Gallery.View())
}

func (api *galleryApi) photo(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	photo, err := p.Gallery.Photo(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, photo)
}

func (api *galleryApi) like(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	photo, err := p.Gallery.Like(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, photo)
}

// loadMore responds once the next page has been loaded.
func (api *galleryApi) loadMore(ctx echo.Context) error {
	p, err := getContextPortal(ctx)
	if err != nil {
		return err
	}
	tsk, err := p.Gallery.LoadMore()
	if err != nil {
		return err
	}
	if _, err = tsk.Wait(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "loading more photos")
	}
	return ctx.JSON(http.StatusOK, p.Gallery.View())
}
