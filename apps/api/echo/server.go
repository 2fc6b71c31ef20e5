package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/portal"
)

type (
	Deps struct {
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator
		SessionSvc *portal.Service
	}

	Server struct {
		conf     *core.Config
		app      *echo.Echo
		deps     *Deps
		errors   chan error
		shutdown chan os.Signal
	}
)

// NewServer builds the API. shutdown receives SIGINT and SIGTERM; a nil
// channel is replaced by a new one.
func NewServer(conf *core.Config, shutdown chan os.Signal, deps *Deps) *Server {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
	}
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	s := &Server{
		conf:     conf,
		app:      echo.New(),
		deps:     deps,
		errors:   make(chan error, 1),
		shutdown: shutdown,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	if len(s.conf.Server.AllowOrigins) > 0 {
		s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.conf.Server.AllowOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator)
	s.app.Debug = s.conf.Debug

	s.app.GET("/", s.shell)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(s.conf.SecretKey))
	sess := sessionMiddleware(s.deps.SessionSvc)

	registerSessionAPI(v1, jwt, sess, s.deps.SessionSvc, s.conf)
	registerHomeAPI(v1, jwt, sess, s.deps.Validate)
	registerGalleryAPI(v1, jwt, sess, s.deps.Validate)
	registerResourceAPI(v1, jwt, sess, s.deps.Validate)
	registerNoticeAPI(v1, jwt, sess)
}

// Start listens on the configured address. Errors are reported on Errors().
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

// Close stops the server immediately.
func (s *Server) Close() error {
	signal.Stop(s.shutdown)
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) shell(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, portal.NewShell(s.conf.AppName))
}
