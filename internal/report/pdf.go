// Package report renders the run artifacts: the PDF table of selected
// compounds and the two probability-density curves.
package report

import (
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/hitmer-tools/dockscore/internal/dataset"
)

// WritePDF renders the selected compounds as a paginated table: a centered
// title, the selection count, then one bordered 60mm row per compound.
func WritePDF(path string, threshold float64, recs []dataset.Record) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(200, 10, fmt.Sprintf("Compounds with Z-Score <= %.3f", threshold), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(200, 10, fmt.Sprintf("Total Number of Selected Compounds: %d", len(recs)), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(60, 10, "Compound ID", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 10, "Docking Score (kcal/mol)", "1", 0, "", false, 0, "")
	pdf.CellFormat(60, 10, "Calculated Z-Score", "1", 0, "", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, rec := range recs {
		pdf.CellFormat(60, 10, rec.ID, "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 10, strconv.FormatFloat(rec.Score, 'g', -1, 64), "1", 0, "", false, 0, "")
		pdf.CellFormat(60, 10, fmt.Sprintf("%.6f", rec.Z), "1", 0, "", false, 0, "")
		pdf.Ln(10)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
