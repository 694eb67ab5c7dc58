//go:build unit

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_NonInteractive(t *testing.T) {
	var out, progress bytes.Buffer
	c := New(&out, &progress)

	t.Run("Banner", func(t *testing.T) {
		out.Reset()
		c.Banner("Port Tool", "1.0.0")

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Len(t, lines, 3)
		assert.Contains(t, lines[1], "Port Tool (v1.0.0)")
		assert.NotContains(t, out.String(), "\x1b[")
	})

	t.Run("ConfigTableAlignsValues", func(t *testing.T) {
		out.Reset()
		c.ConfigTable([][2]string{{"ORG_ID", "123"}, {"CSV_FILE_NAME", ""}})

		assert.Contains(t, out.String(), "  ORG_ID         123\n")
		assert.Contains(t, out.String(), "  CSV_FILE_NAME  -\n")
	})

	t.Run("Panel", func(t *testing.T) {
		out.Reset()
		c.Panel("Step 1", "Read in Appliance Port Configs")
		assert.Equal(t, "[Step 1] Read in Appliance Port Configs\n", out.String())
	})

	t.Run("Summary", func(t *testing.T) {
		out.Reset()
		c.Summary(1, 2, 3)
		assert.Contains(t, out.String(), "Processed 6 row(s): 1 succeeded, 2 failed, 3 skipped")
	})

	t.Run("ProgressIsInert", func(t *testing.T) {
		p := c.NewProgress(3)
		p.Advance()
		p.Finish()
		assert.Empty(t, progress.String())
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
