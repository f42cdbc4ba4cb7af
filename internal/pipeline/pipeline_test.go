package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hitmer-tools/dockscore/internal/config"
	"github.com/hitmer-tools/dockscore/internal/score"
)

func testConfig(t *testing.T, input string) *config.Global {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.csv")
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return &config.Global{
		InputFile:   path,
		OutputFile:  filepath.Join(dir, "scores_with_Z_Scores.csv"),
		ReportPDF:   filepath.Join(dir, "Z-Score_Table.pdf"),
		ZScorePlot:  filepath.Join(dir, "Z_Score_Distribution_Curve.png"),
		ScorePlot:   filepath.Join(dir, "Docking_Score_Distribution_Curve.png"),
		IDColumn:    "Title",
		ScoreColumn: "docking score",
		ZThreshold:  -1.960,
		CurvePoints: 100,
		PlotWidth:   800,
		PlotHeight:  600,
	}
}

func TestRunSelectsStrongBinders(t *testing.T) {
	// Eight scores of -5 and two of -15: mean -7, population stddev 4, so the
	// -15 rows standardize to exactly -2. One garbage row is dropped.
	var b strings.Builder
	b.WriteString("Title,docking score\n")
	b.WriteString("hit-1,\"-15,0\"\n")
	for i := 0; i < 4; i++ {
		b.WriteString("mol-a,-5\n")
	}
	b.WriteString("junk,not-a-number\n")
	b.WriteString("hit-2,-15\n")
	for i := 0; i < 4; i++ {
		b.WriteString("mol-b,-5\n")
	}

	cfg := testConfig(t, b.String())
	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.RunID == "" {
		t.Fatal("empty run ID")
	}
	if res.Total != 10 || res.Dropped != 1 || res.Selected != 2 {
		t.Fatalf("total/dropped/selected = %d/%d/%d, want 10/1/2", res.Total, res.Dropped, res.Selected)
	}
	if res.Params.Mean != -7 || res.Params.StdDev != 4 {
		t.Fatalf("params = %+v, want mean -7 stddev 4", res.Params)
	}

	out, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("read filtered csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	want := []string{
		"Title,docking score,Z Score",
		"hit-1,-15,-2.000000",
		"hit-2,-15,-2.000000",
	}
	if len(lines) != len(want) {
		t.Fatalf("filtered csv = %q, want %d lines", lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("filtered line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	for _, p := range []string{cfg.ReportPDF, cfg.ZScorePlot, cfg.ScorePlot} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Fatalf("artifact %s missing or empty (err=%v)", p, err)
		}
	}
}

func TestRunNoSelectionWritesHeaderOnly(t *testing.T) {
	// Mean 22, population stddev ~39: nothing reaches z <= -1.960.
	input := "Title,docking score\n" +
		"m1,1.0\nm2,2.0\nm3,3.0\nm4,4.0\nm5,100.0\n"
	cfg := testConfig(t, input)
	res, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Selected != 0 {
		t.Fatalf("selected = %d, want 0", res.Selected)
	}
	out, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("read filtered csv: %v", err)
	}
	if strings.TrimSpace(string(out)) != "Title,docking score,Z Score" {
		t.Fatalf("expected header-only filtered csv, got %q", string(out))
	}
	// The score plot still renders, just without a marker.
	if fi, err := os.Stat(cfg.ScorePlot); err != nil || fi.Size() == 0 {
		t.Fatalf("score plot missing or empty (err=%v)", err)
	}
}

func TestRunDegenerateDataset(t *testing.T) {
	cfg := testConfig(t, "Title,docking score\nm1,abc\nm2,xyz\n")
	if _, err := Run(cfg); !errors.Is(err, score.ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
	// Nothing may be written when standardization fails.
	if _, err := os.Stat(cfg.OutputFile); !os.IsNotExist(err) {
		t.Fatalf("filtered csv should not exist, stat err = %v", err)
	}

	cfg2 := testConfig(t, "Title,docking score\nm1,-5\nm2,-5\nm3,-5\n")
	if _, err := Run(cfg2); !errors.Is(err, score.ErrZeroStdDev) {
		t.Fatalf("err = %v, want ErrZeroStdDev", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig(t, "Title,docking score\nm1,-5\n")
	cfg.InputFile = filepath.Join(t.TempDir(), "absent.csv")
	if _, err := Run(cfg); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
