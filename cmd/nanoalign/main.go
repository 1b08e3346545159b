// Command nanoalign provides a CLI for nanopore blockade signal alignment.
//
// Usage:
//
//	nanoalign [command] [flags]
//
// Commands:
//
//	model       Print the theoretical signal of a peptide
//	align       Align two signals
//	compare     Compare consecutive averaged events
//	fit         Fit averaged events to a peptide model
//	peptides    Build models for a FASTA peptide database
//	version     Show version information
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nano-align/nanoalign-go/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nanoalign",
	Short: "Nanopore blockade signal alignment",
	Long: `nanoalign compares nanopore blockade traces with each other and with
theoretical signals built from peptide residue volumes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the --config file and lets flags set on the command line
// override it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()

	path, _ := fs.GetString("config")
	fileConf, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	flagConf := config.Default()
	ints := map[string]*int{
		"window":  &flagConf.Window,
		"step":    &flagConf.Step,
		"cluster": &flagConf.Cluster,
		"flank":   &flagConf.Flank,
		"workers": &flagConf.Workers,
	}
	for name, dst := range ints {
		if fs.Lookup(name) != nil {
			*dst, _ = fs.GetInt(name)
		}
	}
	floats := map[string]*float64{
		"gap-open":   &flagConf.Trace.GapOpen,
		"gap-extend": &flagConf.Trace.GapExtend,
	}
	for name, dst := range floats {
		if fs.Lookup(name) != nil {
			*dst, _ = fs.GetFloat64(name)
		}
	}
	if fs.Lookup("reverse") != nil {
		flagConf.Reverse, _ = fs.GetBool("reverse")
	}

	conf := flagConf.FlagMerge(fileConf, fs.Changed)
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// parseSignal reads samples separated by commas or whitespace.
func parseSignal(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	signal := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		signal[i] = v
	}
	return signal, nil
}

func formatSignal(signal []float64) string {
	fields := make([]string, len(signal))
	for i, v := range signal {
		fields[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return strings.Join(fields, " ")
}
