package config

import (
	"io"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
)

// SetupLogging installs a leveled backend writing to w for all package
// loggers.
func (c *Config) SetupLogging(w io.Writer) error {
	level, err := logging.LogLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "bad log level %q", c.LogLevel)
	}

	backend := logging.NewLogBackend(w, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return nil
}
