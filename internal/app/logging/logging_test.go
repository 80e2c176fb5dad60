package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})

	require.NoError(t, Setup(Config{Level: "debug", Format: "json", File: path}))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("tier", "basic").Info("tier created")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tier":"basic"`)
	assert.Contains(t, string(data), "tier created")
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	require.NoError(t, Setup(Config{Level: "verbose"}))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
