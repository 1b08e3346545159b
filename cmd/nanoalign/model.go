package main

import (
	"fmt"

	"github.com/nano-align/nanoalign-go/internal/model"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/nano-align/nanoalign-go/internal/stats"
	"github.com/spf13/cobra"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Print the theoretical signal of a peptide",
	Args:  cobra.NoArgs,
	RunE:  runModel,
}

func init() {
	modelCmd.Flags().StringP("peptide", "p", "", "peptide sequence")
	modelCmd.Flags().IntP("window", "w", 4, "residues inside the pore")
	modelCmd.Flags().Float64("plot-len", 0, "print residue positions on a trace of this many samples")
	modelCmd.MarkFlagRequired("peptide")

	rootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	residues, _ := cmd.Flags().GetString("peptide")
	pep, err := peptide.New(residues)
	if err != nil {
		return err
	}

	volumes, err := conf.VolumeTable()
	if err != nil {
		return err
	}

	signal, err := model.NewBuilder(volumes).Build(pep, conf.Window)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, v := range signal {
		fmt.Fprintf(out, "%d\t%.6f\n", i, v)
	}

	if s, err := stats.FromSignal(signal); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), s)
	}

	plotLen, _ := cmd.Flags().GetFloat64("plot-len")
	if plotLen > 0 {
		positions, err := model.ResiduePositions(pep, conf.Window, plotLen)
		if err != nil {
			return err
		}
		for i, x := range positions {
			fmt.Fprintf(out, "%c\t%.2f\n", pep.Residues[i], x)
		}
	}
	return nil
}
