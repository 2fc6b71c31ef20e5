package dig_container

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/happyclass/apps/api/echo"
	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/home"
	"github.com/trezcool/happyclass/core/portal"
	logsvc "github.com/trezcool/happyclass/services/logger"
	smssvc "github.com/trezcool/happyclass/services/sms"
	inmemdb "github.com/trezcool/happyclass/storage/database/inmem"
	"github.com/trezcool/happyclass/storage/seed"
)

func newLogger(conf *core.Config) (*logsvc.RollbarLogger, core.Logger) {
	zl, err := logsvc.NewZerolog(os.Stdout, conf)
	if err != nil {
		log.Fatal(errors.Wrap(err, "setting up logger"))
	}
	logger := logsvc.NewRollbarLogger(zl.With().Str("component", "api").Logger(), conf)
	logger.Enable(!conf.Debug)
	return logger, logger
}

func newSessionService(conf *core.Config, logger core.Logger, repo portal.Repository) *portal.Service {
	s, err := seed.Default()
	if err != nil {
		logger.Fatal("loading seed", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	opts := portal.OptionsFromConfig(conf.Portal)
	opts.Clock = clock.New()
	opts.RolePicker = home.NewRandomRolePicker(rnd, conf.Portal.TeacherChance, conf.Portal.ParentChance)
	opts.CodeSender = smssvc.NewConsoleService(logger, conf, rand.New(rand.NewSource(rnd.Int63())))
	return portal.NewService(repo, s, opts)
}

func newSessionRepository() (portal.Repository, error) {
	db, err := inmemdb.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory database")
	}
	return inmemdb.NewSessionRepository(db), nil
}

func newValidator(translator ut.Translator) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate
}

func newServer(conf *core.Config, logger core.Logger, validate *validator.Validate, translator ut.Translator, svc *portal.Service) *echoapi.Server {
	return echoapi.NewServer(conf, nil, &echoapi.Deps{
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
		SessionSvc: svc,
	})
}

// newSweeper schedules the removal of idle sessions. It is not started.
func newSweeper(conf *core.Config, logger core.Logger, svc *portal.Service) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(conf.Server.SessionSweepSpec, func() {
		n, err := svc.SweepIdle(conf.Server.SessionIdleTimeout)
		if err != nil {
			logger.Error("sweeping idle sessions", err)
			return
		}
		if n > 0 {
			logger.Debug("idle sessions closed", map[string]interface{}{"count": n})
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scheduling session sweep %q", conf.Server.SessionSweepSpec)
	}
	return c, nil
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newSessionRepository))
	must(c.Provide(newSessionService))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newServer))
	must(c.Provide(newSweeper))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
