package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, 4, c.Window)
	assert.Equal(t, 10, c.Step)
	assert.Equal(t, 10, c.Cluster)
	assert.Equal(t, 50, c.Flank)
	assert.True(t, c.Reverse)
	assert.Equal(t, "localhost:8080", c.Server.Addr())

	// Default returns a fresh value each time.
	c.Window = 9
	assert.Equal(t, 4, Default().Window)
}

func TestLoad(t *testing.T) {
	doc := `
window = 3
step = 5
reverse = false

[trace]
gap_open = -6.0
gap_extend = -2.0

[server]
port = 9090

[volumes]
a = 0.5
X = 0.3
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Window)
	assert.Equal(t, 5, c.Step)
	assert.False(t, c.Reverse)
	assert.Equal(t, -6.0, c.Trace.GapOpen)
	assert.Equal(t, -2.0, c.Trace.GapExtend)
	assert.Equal(t, 100.0, c.Trace.MatchScale, "unset keys keep defaults")
	assert.Equal(t, "localhost", c.Server.Host)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, int64(4000000), c.Server.MaxCells)

	table, err := c.VolumeTable()
	require.NoError(t, err)
	v, ok := table.Volume('A')
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
	v, ok = table.Volume('X')
	require.True(t, ok)
	assert.Equal(t, 0.3, v)
	assert.Equal(t, 21, table.Len())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "window = "},
		{"unknown key", "windows = 3"},
		{"unknown table key", "[trace]\nopen = -1.0"},
		{"zero window", "window = 0"},
		{"negative flank", "flank = -1"},
		{"bad port", "[server]\nport = 70000"},
		{"zero max cells", "[server]\nmax_cells = 0"},
		{"long volume key", "[volumes]\nAla = 0.1"},
		{"negative volume", "[volumes]\nA = -0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	c := Default()
	c.Window = 6
	c.Volumes = map[string]float64{"G": 0.07}

	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "nanoalign.toml")
	require.NoError(t, os.WriteFile(path, []byte("cluster = 4\n"), 0o644))

	c, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Cluster)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Workers = 3

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, 10, opts.Step)
	assert.Equal(t, -4.0, opts.TraceScoring.GapOpen)
	assert.Equal(t, -1.0, opts.ModelScoring.GapExtend)
	assert.InDelta(t, 10.0, opts.TraceScoring.Match(0.2, 0.2), 1e-9)

	c.Workers = 0
	opts, err = c.Options()
	require.NoError(t, err)
	assert.Greater(t, opts.Workers, 0)

	p, err := c.Pipeline()
	require.NoError(t, err)
	assert.Equal(t, 4, p.Options().Window)
}

func TestFlagMerge(t *testing.T) {
	fileConf := Default()
	fileConf.Window = 7
	fileConf.Step = 3
	fileConf.Model.GapOpen = -5
	fileConf.Server.MaxCells = 900

	flagConf := Default()
	flagConf.Step = 1

	changed := func(name string) bool { return name == "step" }
	merged := flagConf.FlagMerge(fileConf, changed)

	assert.Equal(t, 7, merged.Window)
	assert.Equal(t, 1, merged.Step)
	assert.Equal(t, -5.0, merged.Model.GapOpen)
	assert.Equal(t, int64(900), merged.Server.MaxCells)
}
