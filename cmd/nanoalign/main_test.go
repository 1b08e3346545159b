package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestParseSignal(t *testing.T) {
	s, err := parseSignal("0.1, 0.2 0.3,0.4")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, s)

	s, err = parseSignal("")
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = parseSignal("0.1,abc")
	require.Error(t, err)
}

func TestAlignCommand(t *testing.T) {
	out := execute(t, "align", "--seq1", "0.1,0.2,0.3,0.4", "--seq2", "0.1,0.3,0.4", "--fill")

	assert.Contains(t, out, "Seq2: 0.1000 - 0.3000 0.4000")
	assert.Contains(t, out, "Score: 26.0000")
	assert.Contains(t, out, "Fill2: 0.1000 0.2000 0.3000 0.4000")
}

func TestModelCommand(t *testing.T) {
	out := execute(t, "model", "--peptide", "AG", "--window", "2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0\t0.091500", lines[0])
	assert.Equal(t, "2\t0.066400", lines[2])
}

func TestPeptidesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">p1 first\nACDE\n>p2\nGGA\n"), 0o644))

	out := execute(t, "peptides", "--db", path, "--window", "2")
	assert.Contains(t, out, "p1\t4\t")
	assert.Contains(t, out, "p2\t3\t")
}

func TestCompareCommand(t *testing.T) {
	doc := `{"normalized": true, "events": [
		{"trace": [0.2, 0.3, 0.4, 0.5, 0.4]},
		{"trace": [0.2, 0.3, 0.4, 0.5, 0.4]},
		{"trace": [0.2, 0.4, 0.4, 0.5, 0.3]}
	]}`
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out := execute(t, "compare", "--events", path,
		"--cluster", "1", "--flank", "0", "--step", "1", "--reverse=false", "--workers", "2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "\t0-1\t50.0000\t")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nanoalign.toml")
	require.NoError(t, os.WriteFile(path, []byte("window = 5\ncluster = 3\n"), 0o644))

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().String("config", "", "")
		cmd.Flags().Int("window", 4, "")
		cmd.Flags().Int("cluster", 10, "")
		return cmd
	}

	cmd := newCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--cluster", "6"}))
	conf, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 5, conf.Window, "file value when flag is unset")
	assert.Equal(t, 6, conf.Cluster, "flag overrides file")

	cmd = newCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--window", "0"}))
	_, err = loadConfig(cmd)
	require.Error(t, err)
}
