package main

import (
	"fmt"

	"github.com/nano-align/nanoalign-go/internal/alignment"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align two signals",
	Long: `Align two signals given as comma or space separated samples. Signals
are aligned as given, without scaling or downsampling.`,
	Args: cobra.NoArgs,
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().String("seq1", "", "first signal")
	alignCmd.Flags().String("seq2", "", "second signal")
	alignCmd.Flags().Float64("gap-open", -4, "gap opening penalty")
	alignCmd.Flags().Float64("gap-extend", -3, "gap extension penalty")
	alignCmd.Flags().Bool("fill", false, "also print both tracks with gaps filled")
	alignCmd.Flags().Bool("score-only", false, "print the score only")

	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	raw1, _ := cmd.Flags().GetString("seq1")
	raw2, _ := cmd.Flags().GetString("seq2")
	seq1, err := parseSignal(raw1)
	if err != nil {
		return fmt.Errorf("seq1: %w", err)
	}
	seq2, err := parseSignal(raw2)
	if err != nil {
		return fmt.Errorf("seq2: %w", err)
	}

	scoring, err := conf.Trace.Scoring()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scoreOnly, _ := cmd.Flags().GetBool("score-only"); scoreOnly {
		score, err := alignment.AlignScoreOnly(seq1, seq2, scoring)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%.4f\n", score)
		return nil
	}

	result, err := alignment.Align(seq1, seq2, scoring)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result.Format())

	if fill, _ := cmd.Flags().GetBool("fill"); fill {
		filled1, filled2, err := alignment.FillResult(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Fill1: %s\nFill2: %s\n", formatSignal(filled1), formatSignal(filled2))
	}
	return nil
}
