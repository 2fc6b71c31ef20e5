// Package logsvc provides the application's core.Logger.
package logsvc

import (
	"fmt"
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/happyclass/core"
)

// NewZerolog builds the output logger. When conf.LogConfigPath is set, it is
// read as a zeroconfig YAML file; otherwise logs go to a console writer on w.
func NewZerolog(w io.Writer, conf *core.Config) (zerolog.Logger, error) {
	if conf.LogConfigPath == "" {
		level := zerolog.InfoLevel
		if conf.Debug {
			level = zerolog.DebugLevel
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			Level(level).
			With().Timestamp().Str("app", conf.AppName).Logger(), nil
	}

	data, err := os.ReadFile(conf.LogConfigPath)
	if err != nil {
		return zerolog.Nop(), pkgerrors.Wrapf(err, "reading log config %s", conf.LogConfigPath)
	}
	return ParseZeroconfig(data)
}

// ParseZeroconfig compiles a zeroconfig YAML document.
func ParseZeroconfig(data []byte) (zerolog.Logger, error) {
	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return zerolog.Nop(), pkgerrors.Wrap(err, "log config is not valid yaml")
	}
	logger, err := cfg.Compile()
	if err != nil {
		return zerolog.Nop(), pkgerrors.Wrap(err, "log config is not valid for zerolog")
	}
	return *logger, nil
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// stackOf returns the innermost stack trace recorded by pkg/errors, if any.
func stackOf(err error) string {
	var st stackTracer
	for e := err; e != nil; {
		if s, ok := e.(stackTracer); ok {
			st = s
		}
		c, ok := e.(interface{ Cause() error })
		if !ok {
			break
		}
		e = c.Cause()
	}
	if st == nil {
		return ""
	}
	return fmt.Sprintf("%+v", st.StackTrace())
}
