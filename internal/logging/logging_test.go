package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warning", logrus.WarnLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"fatal", logrus.FatalLevel},
		{"", logrus.InfoLevel},
	}
	for _, tt := range tests {
		require.NoError(t, SetLevel(tt.in))
		assert.Equal(t, tt.want, Log.GetLevel(), tt.in)
	}

	assert.Error(t, SetLevel("loud"))
}

func TestRedirect(t *testing.T) {
	t.Cleanup(Restore)

	path := filepath.Join(t.TempDir(), "crownpick.log")
	closeFn, err := Redirect(path)
	require.NoError(t, err)

	For("timeinput").WithField("hour", 22).Warn("invalid selection")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(b)
	assert.True(t, strings.Contains(line, "component=timeinput"), line)
	assert.True(t, strings.Contains(line, "hour=22"), line)
}

func TestRedirect_EmptyDiscards(t *testing.T) {
	t.Cleanup(Restore)

	closeFn, err := Redirect("")
	require.NoError(t, err)
	assert.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
}
