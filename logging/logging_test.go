package logging

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/fernandosanchezjr/seedrand/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	level := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(level)
		exitHandler()
		logFile = nil
	})
}

func TestSetupLogger_File(t *testing.T) {
	restoreLogger(t)
	logPath := filepath.Join(t.TempDir(), "logs", "seedrand.log")
	require.NoError(t, SetupLogger(config.Log{Level: "debug", File: logPath}))
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("seed", 10).Debug("Engine seeded")
	data, err := ioutil.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "Engine seeded")
	require.Contains(t, string(data), "seed=10")
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	restoreLogger(t)
	require.Error(t, SetupLogger(config.Log{Level: "loud"}))
}

func TestSetupLogger_Stdout(t *testing.T) {
	restoreLogger(t)
	require.NoError(t, SetupLogger(config.Log{Level: "warn"}))
	require.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
