package logging

import (
	"io"
	"os"
	"path"

	"github.com/fernandosanchezjr/seedrand/config"
	"github.com/fernandosanchezjr/seedrand/utils"
	"github.com/sirupsen/logrus"
)

var logFile *os.File

func openLogFile(filePath string) (*os.File, error) {
	expanded, err := utils.ExpandPath(filePath)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(path.Dir(expanded), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(expanded, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// SetupLogger configures the standard logrus logger: text output at the
// configured level, to stdout and, when cfg.File is set, appended to that
// file as well.
func SetupLogger(cfg config.Log) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Colors, FullTimestamp: true})
	logrus.SetLevel(level)
	if cfg.File == "" {
		logrus.SetOutput(os.Stdout)
		return nil
	}
	f, err := openLogFile(cfg.File)
	if err != nil {
		logrus.WithError(err).WithField("file", cfg.File).Error("Error opening log file")
		return err
	}
	exitHandler()
	logFile = f
	logrus.RegisterExitHandler(exitHandler)
	logrus.SetOutput(io.MultiWriter(logFile, os.Stdout))
	return nil
}
