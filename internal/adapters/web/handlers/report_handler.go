package handlers

import (
	"fmt"
	"net/http"
	"time"

	adapterreporting "github.com/thermovote/thermovote/internal/adapters/reporting"
	"github.com/thermovote/thermovote/internal/core/services/reporting"
)

// ReportHandler serves the downloadable comfort report.
type ReportHandler struct {
	Generator *reporting.ComfortReportGenerator
	Exporter  *adapterreporting.PDFExporter
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(generator *reporting.ComfortReportGenerator, exporter *adapterreporting.PDFExporter) *ReportHandler {
	return &ReportHandler{
		Generator: generator,
		Exporter:  exporter,
	}
}

// HandleComfortReport generates a point-in-time PDF summary of all zones.
func (h *ReportHandler) HandleComfortReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Generator.Generate(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.Exporter.ExportComfortReport(report)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("comfort-report-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
