package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/hitmer-tools/dockscore/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set dockscore configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("input_file: %s\n", cfg.InputFile)
		fmt.Printf("output_file: %s\n", cfg.OutputFile)
		fmt.Printf("report_pdf: %s\n", cfg.ReportPDF)
		fmt.Printf("zscore_plot: %s\n", cfg.ZScorePlot)
		fmt.Printf("score_plot: %s\n", cfg.ScorePlot)
		fmt.Printf("id_column: %s\n", cfg.IDColumn)
		fmt.Printf("score_column: %s\n", cfg.ScoreColumn)
		fmt.Printf("z_threshold: %.3f\n", cfg.ZThreshold)
		fmt.Printf("curve_points: %d\n", cfg.CurvePoints)
		fmt.Printf("plot_width: %d\n", cfg.PlotWidth)
		fmt.Printf("plot_height: %d\n", cfg.PlotHeight)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "input_file":
			cfg.InputFile = val
		case "output_file":
			cfg.OutputFile = val
		case "report_pdf":
			cfg.ReportPDF = val
		case "zscore_plot":
			cfg.ZScorePlot = val
		case "score_plot":
			cfg.ScorePlot = val
		case "id_column":
			cfg.IDColumn = val
		case "score_column":
			cfg.ScoreColumn = val
		case "z_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for z_threshold: %w", err)
			}
			cfg.ZThreshold = f
		case "curve_points":
			i, err := strconv.Atoi(val)
			if err != nil || i < 2 {
				return fmt.Errorf("invalid int for curve_points: %v", val)
			}
			cfg.CurvePoints = i
		case "plot_width":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for plot_width: %v", val)
			}
			cfg.PlotWidth = i
		case "plot_height":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for plot_height: %v", val)
			}
			cfg.PlotHeight = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
