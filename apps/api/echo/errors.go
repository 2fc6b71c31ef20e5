package echoapi

import (
	"context"
	"errors"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/access"
)

const statusClientClosedRequest = 499

var (
	errUnauthorized       = echo.NewHTTPError(http.StatusUnauthorized, "session not authenticated")
	errSessionExpired     = echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	errTokenSigningFailed = errors.New("failed to sign token")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := pkgerrors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				message = origErr.Message
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *access.DeniedError:
			code = http.StatusForbidden
			if origErr.Reason == access.Unauthenticated {
				code = http.StatusUnauthorized
			}
			message = origErr.Error()
		default:
			switch cause {
			case core.ErrNotFound:
				code = http.StatusNotFound
				message = err.Error()
			case core.ErrBusy:
				code = http.StatusConflict
				message = err.Error()
			case context.Canceled: // client closed the connection
				code = statusClientClosedRequest
				message = "client closed request"
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				args := []interface{}{pkgerrors.Wrap(err, msg)}
				if sess, sErr := getContextSession(ctx); sErr == nil {
					if usr := sess.Portal.Store.View().User; usr != nil {
						args = append(args, *usr)
					}
					args = append(args, map[string]interface{}{"session": sess.ID})
				}
				logger.Error(msg, args...)
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
