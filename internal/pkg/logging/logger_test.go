//go:build unit

package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleFormatter_Format(t *testing.T) {
	logger := logrus.New()

	tests := []struct {
		name   string
		fields logrus.Fields
		want   string
	}{
		{
			name:   "RowTarget",
			fields: logrus.Fields{FieldComponent: "runner", FieldNetwork: "HQ", FieldPort: "3", FieldLine: 2},
			want:   "[INFO][runner][HQ port 3] Updated appliance port (line=2)\n",
		},
		{
			name:   "EmptyPort",
			fields: logrus.Fields{FieldComponent: "runner", FieldNetwork: "HQ", FieldPort: "", FieldLine: 4},
			want:   "[INFO][runner][HQ port -] Updated appliance port (line=4)\n",
		},
		{
			name:   "NetworkOnly",
			fields: logrus.Fields{FieldComponent: "directory", FieldNetwork: "HQ", "id": "N_1"},
			want:   "[INFO][directory][HQ] Updated appliance port (id=N_1)\n",
		},
		{
			name:   "NoTarget",
			fields: logrus.Fields{"b": 2, "a": 1},
			want:   "[INFO] Updated appliance port (a=1, b=2)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := logrus.NewEntry(logger).WithFields(tt.fields)
			entry.Level = logrus.InfoLevel
			entry.Message = "Updated appliance port"

			out, err := (&ConsoleFormatter{}).Format(entry)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestInitLoggerWithOutput(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	t.Run("SimpleFormat", func(t *testing.T) {
		var buf bytes.Buffer
		InitLoggerWithOutput(LogConfig{Level: "debug", Format: "simple"}, &buf)

		assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
		WithComponent("runner").Info("hello")
		assert.Contains(t, buf.String(), "[INFO][runner] hello")
	})

	t.Run("InvalidLevelDefaultsToInfo", func(t *testing.T) {
		var buf bytes.Buffer
		InitLoggerWithOutput(LogConfig{Level: "loud", Format: "simple"}, &buf)

		assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
		assert.Contains(t, buf.String(), "Invalid log level 'loud'")
	})

	t.Run("JSONFormat", func(t *testing.T) {
		var buf bytes.Buffer
		InitLoggerWithOutput(LogConfig{Level: "info", Format: "json"}, &buf)

		WithRow(WithComponent("runner"), "HQ", "3", 2).Warn("careful")
		assert.Contains(t, buf.String(), `"network":"HQ"`)
		assert.Contains(t, buf.String(), `"port":"3"`)
		assert.Contains(t, buf.String(), `"line":2`)
		assert.Contains(t, buf.String(), `"component":"runner"`)
		assert.Contains(t, buf.String(), `"level":"warning"`)
	})
}

func TestWithNetwork(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	var buf bytes.Buffer
	InitLoggerWithOutput(LogConfig{Level: "info", Format: "simple"}, &buf)

	t.Run("KeepsInjectedEntry", func(t *testing.T) {
		entry := WithNetwork(WithComponent("directory").WithField("run_id", "r1"), "Branch")
		assert.Equal(t, "Branch", entry.Data[FieldNetwork])
		assert.Equal(t, "r1", entry.Data["run_id"])
		assert.Equal(t, "directory", entry.Data[FieldComponent])
	})

	t.Run("NilEntryUsesGlobalLogger", func(t *testing.T) {
		buf.Reset()
		WithNetwork(nil, "Branch").Info("listed")
		assert.Equal(t, "[INFO][Branch] listed\n", buf.String())
	})
}
