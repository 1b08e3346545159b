package main

import (
	"fmt"
	"log"

	"github.com/nano-align/nanoalign-go/internal/blockade"
	"github.com/nano-align/nanoalign-go/internal/config"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/nano-align/nanoalign-go/internal/stats"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare consecutive averaged events",
	Long: `Cluster the events of a JSON event file, average each cluster and align
every average with the next one.`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit averaged events to a peptide model",
	Args:  cobra.NoArgs,
	RunE:  runFit,
}

func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("events", "e", "", "JSON event file")
	cmd.Flags().Int("cluster", 10, "events averaged together")
	cmd.Flags().Int("flank", 50, "samples trimmed from both ends of an average")
	cmd.Flags().Bool("reverse", true, "reverse averages before trimming")
	cmd.Flags().Int("step", 10, "downsampling step")
	cmd.Flags().Int("workers", 0, "concurrent alignments (0 = one per CPU)")
	cmd.MarkFlagRequired("events")
}

func init() {
	addEventFlags(compareCmd)
	addEventFlags(fitCmd)
	fitCmd.Flags().StringP("peptide", "p", "", "peptide sequence")
	fitCmd.Flags().IntP("window", "w", 4, "residues inside the pore")
	fitCmd.Flags().Bool("c-terminal", false, "model the peptide read from the C-terminus")
	fitCmd.MarkFlagRequired("peptide")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(fitCmd)
}

// loadAverages reads the event file and averages its clusters.
func loadAverages(cmd *cobra.Command, conf *config.Config) ([][]float64, error) {
	path, _ := cmd.Flags().GetString("events")
	events, err := blockade.FileSource{Path: path}.Events()
	if err != nil {
		return nil, err
	}

	if s, err := stats.FromEvents(events); err == nil {
		log.Printf("Loaded %d events (%d samples) from %s", s.Count, s.TotalSamples, path)
	}

	return blockade.Averages(events, conf.Cluster, conf.Flank, conf.Reverse)
}

func runCompare(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	averages, err := loadAverages(cmd, conf)
	if err != nil {
		return err
	}

	pipeline, err := conf.Pipeline()
	if err != nil {
		return err
	}

	reports, err := pipeline.CompareConsecutive(cmd.Context(), averages)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "id\tpair\tscore\tcolumns\tgaps")
	for _, r := range reports {
		fmt.Fprintf(out, "%s\t%d-%d\t%.4f\t%d\t%d\n",
			r.ID, r.Index, r.Index+1, r.Score, r.Alignment.Len(), r.Alignment.TotalGaps())
	}
	return nil
}

func runFit(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	residues, _ := cmd.Flags().GetString("peptide")
	pep, err := peptide.New(residues)
	if err != nil {
		return err
	}
	if cTerminal, _ := cmd.Flags().GetBool("c-terminal"); cTerminal {
		pep = pep.Reverse()
	}

	averages, err := loadAverages(cmd, conf)
	if err != nil {
		return err
	}

	pipeline, err := conf.Pipeline()
	if err != nil {
		return err
	}

	reports, err := pipeline.FitEvents(cmd.Context(), pep, averages)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range reports {
		fmt.Fprintf(out, "# %s average %d score %.4f\n", r.ID, r.Index, r.Score)
		fmt.Fprintf(out, "model\t%s\n", formatSignal(r.Model))
		fmt.Fprintf(out, "event\t%s\n", formatSignal(r.Event))
	}
	return nil
}
