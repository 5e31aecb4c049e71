package report

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	"github.com/go-pdf/fpdf"
	"go.opentelemetry.io/otel/attribute"
)

// MaxChartImages is how many rasterized chart snapshots one report takes.
const MaxChartImages = 4

type ChartImage struct {
	Name string
	PNG  []byte
}

type Export struct {
	Filename string
	PDF      []byte
}

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Filename derives the report file name from the display name,
// spaces replaced with underscores.
func Filename(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "fitness"
	}
	return strings.ReplaceAll(name, " ", "_") + "_report.pdf"
}

// Export renders the full report PDF. Any failure aborts the whole
// export, a partial file is never produced.
func (e *Exporter) Export(
	ctx context.Context,
	state *dashboard.UserState,
	charts []ChartImage,
) (_ *Export, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "report.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("report.charts", len(charts)))

	if len(charts) > MaxChartImages {
		return nil, fmt.Errorf("too many chart images: %d, max is %d", len(charts), MaxChartImages)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("FitDash Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Fitness Report: "+state.Profile.DisplayName, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	e.writeSummaryTable(pdf, state)

	for _, chart := range charts {
		e.writeChartImage(pdf, chart)
	}

	pdf.AddPage()
	e.writeWorkoutsTable(pdf, state.Workouts)
	pdf.Ln(8)
	e.writeNutritionTable(pdf, state.Nutrition)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write report pdf: %w", err)
	}

	return &Export{
		Filename: Filename(state.Profile.DisplayName),
		PDF:      buf.Bytes(),
	}, nil
}

func (e *Exporter) writeSummaryTable(pdf *fpdf.Fpdf, state *dashboard.UserState) {
	currentWeight, currentBodyFat := "-", "-"
	if len(state.TrendPoints) > 0 {
		lastTrend := state.TrendPoints[len(state.TrendPoints)-1]
		currentWeight = fmt.Sprintf("%.1f kg", lastTrend.WeightKg)
		currentBodyFat = fmt.Sprintf("%.1f %%", lastTrend.BodyFatPercent)
	}

	rows := [][2]string{
		{"Goal", string(state.Goals.GoalType)},
		{"Current weight", currentWeight},
		{"Target weight", fmt.Sprintf("%.1f kg", state.Goals.TargetWeightKg)},
		{"Current body fat", currentBodyFat},
		{"Target body fat", fmt.Sprintf("%.1f %%", state.Goals.TargetBodyFatPercent)},
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *Exporter) writeChartImage(pdf *fpdf.Fpdf, chart ChartImage) {
	pdf.RegisterImageOptionsReader(
		chart.Name,
		fpdf.ImageOptions{ImageType: "PNG"},
		bytes.NewReader(chart.PNG),
	)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, chart.Name, "", 1, "L", false, 0, "")
	pdf.ImageOptions(chart.Name, -1, -1, 170, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(4)
}

func (e *Exporter) writeWorkoutsTable(pdf *fpdf.Fpdf, workouts []dashboard.WorkoutRecord) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Workouts", "", 1, "L", false, 0, "")

	headers := []string{"Date", "Exercise", "Sets", "Reps", "Weight", "Min", "Kcal"}
	widths := []float64{28, 60, 15, 15, 22, 15, 20}
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, w := range workouts {
		cells := []string{
			w.Date.Format("2006-01-02"),
			w.ExerciseName,
			strconv.Itoa(w.Sets),
			strconv.Itoa(w.Reps),
			fmt.Sprintf("%.1f", w.WeightKg),
			strconv.Itoa(w.DurationMinutes),
			strconv.Itoa(w.CaloriesBurned),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (e *Exporter) writeNutritionTable(pdf *fpdf.Fpdf, nutrition []dashboard.NutritionRecord) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Nutrition", "", 1, "L", false, 0, "")

	headers := []string{"Date", "Kcal", "Protein (g)", "Carbs (g)", "Fat (g)"}
	widths := []float64{28, 22, 30, 30, 30}
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, n := range nutrition {
		cells := []string{
			n.Date.Format("2006-01-02"),
			strconv.Itoa(n.TotalCalories),
			fmt.Sprintf("%.1f", n.ProteinGrams),
			fmt.Sprintf("%.1f", n.CarbGrams),
			fmt.Sprintf("%.1f", n.FatGrams),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
