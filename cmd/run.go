package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/hitmer-tools/dockscore/internal/config"
	"github.com/hitmer-tools/dockscore/internal/pipeline"
)

var (
	runInput       string
	runOutput      string
	runPDF         string
	runZScorePlot  string
	runScorePlot   string
	runIDColumn    string
	runScoreColumn string
	runThreshold   float64
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Score a docking results table and emit the filtered artifacts",
	Long: `Run loads the input CSV, computes a population z-score per compound, keeps
the compounds at or below the threshold, and writes the filtered CSV, the PDF
table, and the two density plots into the working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if len(args) == 1 {
			cfg.InputFile = args[0]
		}
		f := cmd.Flags()
		if f.Changed("input") {
			cfg.InputFile = runInput
		}
		if f.Changed("output") {
			cfg.OutputFile = runOutput
		}
		if f.Changed("pdf") {
			cfg.ReportPDF = runPDF
		}
		if f.Changed("zscore-plot") {
			cfg.ZScorePlot = runZScorePlot
		}
		if f.Changed("score-plot") {
			cfg.ScorePlot = runScorePlot
		}
		if f.Changed("id-column") {
			cfg.IDColumn = runIDColumn
		}
		if f.Changed("score-column") {
			cfg.ScoreColumn = runScoreColumn
		}
		if f.Changed("threshold") {
			cfg.ZThreshold = runThreshold
		}

		res, err := pipeline.Run(cfg)
		if err != nil {
			return err
		}
		if debug {
			fmt.Printf("run %s: %d rows parsed, %d dropped, mean %.4f, stddev %.4f\n",
				res.RunID, res.Total, res.Dropped, res.Params.Mean, res.Params.StdDev)
		}
		fmt.Printf("✓ Selected %d of %d compounds (z <= %.3f)\n", res.Selected, res.Total, cfg.ZThreshold)
		fmt.Printf("✓ Wrote %s, %s, %s, %s\n", cfg.OutputFile, cfg.ReportPDF, cfg.ZScorePlot, cfg.ScorePlot)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runInput, "input", "", "input CSV of docking results (overrides config)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "filtered CSV path (overrides config)")
	runCmd.Flags().StringVar(&runPDF, "pdf", "", "PDF report path (overrides config)")
	runCmd.Flags().StringVar(&runZScorePlot, "zscore-plot", "", "z-score density plot path (overrides config)")
	runCmd.Flags().StringVar(&runScorePlot, "score-plot", "", "docking score density plot path (overrides config)")
	runCmd.Flags().StringVar(&runIDColumn, "id-column", "", "molecule identifier column name (overrides config)")
	runCmd.Flags().StringVar(&runScoreColumn, "score-column", "", "docking score column name (overrides config)")
	runCmd.Flags().Float64Var(&runThreshold, "threshold", 0, "z-score selection threshold (overrides config)")
}
