package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/middleware"
	"github.com/fitdash/fitdash/internal/report"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"
	"github.com/fitdash/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxReportUploadBytes = 16 << 20 // 16 MB of chart snapshots

// handleExportReport renders the full PDF report. Chart snapshots come in
// as PNG files in the "charts" multipart field, at most four of them.
func (handler *Handler) handleExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.exportReport")
	defer span.End()

	state, err := handler.service.State(ctx, middleware.UserIDFromRequest(r))
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("export report, get state: %s", err)
		http.Error(w, "export report failed", http.StatusInternalServerError)
		return
	}

	var charts []report.ChartImage
	if err := r.ParseMultipartForm(maxReportUploadBytes); err == nil {
		chartFiles := r.MultipartForm.File["charts"]
		if len(chartFiles) > report.MaxChartImages {
			http.Error(
				w,
				fmt.Sprintf("too many chart images, max is %d", report.MaxChartImages),
				http.StatusBadRequest,
			)
			return
		}
		for _, chartFile := range chartFiles {
			file, err := chartFile.Open()
			if err != nil {
				log.Errorf("export report, open chart %s: %s", chartFile.Filename, err)
				http.Error(w, "export report failed", http.StatusBadRequest)
				return
			}
			pngBytes, err := io.ReadAll(file)
			_ = file.Close()
			if err != nil {
				log.Errorf("export report, read chart %s: %s", chartFile.Filename, err)
				http.Error(w, "export report failed", http.StatusBadRequest)
				return
			}
			charts = append(charts, report.ChartImage{
				Name: chartFile.Filename,
				PNG:  pngBytes,
			})
		}
	}

	span.SetAttributes(attribute.Int("report.charts", len(charts)))

	export, err := handler.exporter.Export(ctx, state, charts)
	if err != nil {
		// no partial file on export failure, just the error payload
		log.Errorf("export report failed: %s", err)
		http.Error(w, "export report failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterReportsExported.Inc()

	if handler.backup != nil {
		if err := handler.backup.BackupReport(ctx, export); err != nil {
			// backup is best effort, the client still gets the report
			log.Errorf("backup report %s: %s", export.Filename, err)
		}
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.PDF, export.PDF)
}
