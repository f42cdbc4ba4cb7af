package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure. All paths are resolved relative to the
// working directory at run time unless absolute.
type Global struct {
	InputFile   string  `mapstructure:"input_file" yaml:"input_file"`
	OutputFile  string  `mapstructure:"output_file" yaml:"output_file"`
	ReportPDF   string  `mapstructure:"report_pdf" yaml:"report_pdf"`
	ZScorePlot  string  `mapstructure:"zscore_plot" yaml:"zscore_plot"`
	ScorePlot   string  `mapstructure:"score_plot" yaml:"score_plot"`
	IDColumn    string  `mapstructure:"id_column" yaml:"id_column"`
	ScoreColumn string  `mapstructure:"score_column" yaml:"score_column"`
	ZThreshold  float64 `mapstructure:"z_threshold" yaml:"z_threshold"`
	CurvePoints int     `mapstructure:"curve_points" yaml:"curve_points"`
	PlotWidth   int     `mapstructure:"plot_width" yaml:"plot_width"`
	PlotHeight  int     `mapstructure:"plot_height" yaml:"plot_height"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.dockscore/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dockscore")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCKSCORE")
	v.AutomaticEnv()

	// The score table is read from the working directory under a fixed name;
	// the threshold approximates the 2.5th percentile of the standard normal.
	v.SetDefault("input_file", "file_name.csv")
	v.SetDefault("output_file", "file_name_with_Z_Scores.csv")
	v.SetDefault("report_pdf", "Z-Score_Table.pdf")
	v.SetDefault("zscore_plot", "Z_Score_Distribution_Curve.png")
	v.SetDefault("score_plot", "Docking_Score_Distribution_Curve.png")
	v.SetDefault("id_column", "Title")
	v.SetDefault("score_column", "docking score")
	v.SetDefault("z_threshold", -1.960)
	v.SetDefault("curve_points", 100)
	v.SetDefault("plot_width", 800)
	v.SetDefault("plot_height", 600)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".dockscore")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
