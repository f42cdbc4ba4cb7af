// Package pipeline wires one batch run: load the score table, standardize,
// filter, then write the CSV, PDF, and plot artifacts in order. Any failure
// aborts the run; artifacts already written are left on disk.
package pipeline

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hitmer-tools/dockscore/internal/config"
	"github.com/hitmer-tools/dockscore/internal/dataset"
	"github.com/hitmer-tools/dockscore/internal/report"
	"github.com/hitmer-tools/dockscore/internal/score"
)

// Result summarizes a completed run.
type Result struct {
	RunID    string
	Total    int // rows with a parseable score
	Dropped  int // rows dropped during numeric parsing
	Selected int // rows at or below the threshold
	Params   score.Params
}

// Run executes the full pipeline described by cfg.
func Run(cfg *config.Global) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}

	recs, dropped, err := dataset.Load(cfg.InputFile, cfg.IDColumn, cfg.ScoreColumn)
	if err != nil {
		return nil, err
	}
	res.Total = len(recs)
	res.Dropped = dropped

	xs := make([]float64, len(recs))
	for i, rec := range recs {
		xs[i] = rec.Score
	}
	zs, params, err := score.Standardize(xs)
	if err != nil {
		return nil, fmt.Errorf("standardize %s: %w", cfg.InputFile, err)
	}
	res.Params = params

	var selected []dataset.Record
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range recs {
		recs[i].Z = zs[i]
		if recs[i].Score < lo {
			lo = recs[i].Score
		}
		if recs[i].Score > hi {
			hi = recs[i].Score
		}
		if zs[i] <= cfg.ZThreshold {
			selected = append(selected, recs[i])
		}
	}
	res.Selected = len(selected)

	if err := dataset.WriteFiltered(cfg.OutputFile, cfg.IDColumn, cfg.ScoreColumn, selected); err != nil {
		return nil, err
	}
	if err := report.WritePDF(cfg.ReportPDF, cfg.ZThreshold, selected); err != nil {
		return nil, err
	}

	opt := report.PlotOptions{Points: cfg.CurvePoints, Width: cfg.PlotWidth, Height: cfg.PlotHeight}
	if err := report.WriteZCurve(cfg.ZScorePlot, cfg.ZThreshold, opt); err != nil {
		return nil, err
	}

	// The marker comes from the file just written, not from memory, so the
	// plot annotation always matches the persisted table.
	var marker *float64
	if len(selected) > 0 {
		_, last, err := dataset.LastScore(cfg.OutputFile, cfg.ScoreColumn)
		if err != nil {
			return nil, err
		}
		marker = &last
	}
	if err := report.WriteScoreCurve(cfg.ScorePlot, params, lo, hi, marker, opt); err != nil {
		return nil, err
	}
	return res, nil
}
