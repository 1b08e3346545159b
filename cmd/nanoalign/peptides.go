package main

import (
	"fmt"

	"github.com/nano-align/nanoalign-go/internal/model"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/nano-align/nanoalign-go/internal/stats"
	"github.com/nano-align/nanoalign-go/pkg/nanoalign"
	"github.com/spf13/cobra"
)

var peptidesCmd = &cobra.Command{
	Use:   "peptides",
	Short: "Build models for a FASTA peptide database",
	Args:  cobra.NoArgs,
	RunE:  runPeptides,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), nanoalign.Info())
	},
}

func init() {
	peptidesCmd.Flags().String("db", "", "FASTA peptide database")
	peptidesCmd.Flags().IntP("window", "w", 4, "residues inside the pore")
	peptidesCmd.Flags().Bool("signal", false, "print each model signal")
	peptidesCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(peptidesCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPeptides(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("db")
	peptides, err := peptide.ReadFASTA(path)
	if err != nil {
		return err
	}

	volumes, err := conf.VolumeTable()
	if err != nil {
		return err
	}
	builder := model.NewBuilder(volumes)
	printSignal, _ := cmd.Flags().GetBool("signal")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "id\tlength\tmean\tmax")
	for _, p := range peptides {
		signal, err := builder.Build(p, conf.Window)
		if err != nil {
			return fmt.Errorf("%s: %w", p.ID, err)
		}
		s, err := stats.FromSignal(signal)
		if err != nil {
			return fmt.Errorf("%s: %w", p.ID, err)
		}

		fmt.Fprintf(out, "%s\t%d\t%.4f\t%.4f\n", p.ID, p.Len(), s.Mean, s.Max)
		if printSignal {
			fmt.Fprintf(out, "\t%s\n", formatSignal(signal))
		}
	}
	return nil
}
