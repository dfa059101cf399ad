package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/thermovote/thermovote/internal/core/domain"
)

// PDFExporter exports comfort reports to PDF format
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ExportComfortReport generates a PDF from a comfort report
func (e *PDFExporter) ExportComfortReport(report *domain.ComfortReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, report)
	e.addSummary(pdf, report)
	e.addZoneTable(pdf, report)
	e.addFooter(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// addHeader adds the report title and generation date
func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, report *domain.ComfortReport) {
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 51, 102) // Dark blue
	pdf.CellFormat(0, 15, report.Metadata.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	generated := fmt.Sprintf("Generated: %s", report.Metadata.GeneratedAt.Format("2006-01-02 15:04 MST"))
	pdf.CellFormat(0, 6, generated, "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

// addSummary adds the floor-wide aggregates block
func (e *PDFExporter) addSummary(pdf *gofpdf.Fpdf, report *domain.ComfortReport) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	lines := []string{
		fmt.Sprintf("Average temperature: %.1f C", report.Summary.AverageTemperature),
		fmt.Sprintf("Votes in the last 10 minutes: %d (%d warmer / %d cooler)",
			report.Summary.TotalVotes, report.Summary.HotVotes, report.Summary.ColdVotes),
		fmt.Sprintf("Connected users: %d", report.Summary.ConnectedUsers),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

// addZoneTable adds the per-zone breakdown table
func (e *PDFExporter) addZoneTable(pdf *gofpdf.Fpdf, report *domain.ComfortReport) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Zones", "", 1, "L", false, 0, "")

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	widths := []float64{55, 30, 25, 25, 55}
	headers := []string{"Zone", "Temperature", "Warmer", "Cooler", "Last Updated"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Rows
	pdf.SetFont("Arial", "", 10)
	for _, z := range report.Zones {
		lastUpdated := "-"
		if !z.LastUpdated.IsZero() {
			lastUpdated = z.LastUpdated.Format("2006-01-02 15:04")
		}
		pdf.CellFormat(widths[0], 8, z.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, fmt.Sprintf("%.1f C", z.Temperature), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%d", z.HotVotes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d", z.ColdVotes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, lastUpdated, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// addFooter adds the page footer
func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf, report *domain.ComfortReport) {
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 6, "thermovote - zone comfort voting", "", 1, "C", false, 0, "")
}
