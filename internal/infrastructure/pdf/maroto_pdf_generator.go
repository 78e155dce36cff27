// Package pdf genera el reporte PDF del análisis de rotación de un estilo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Estilo               │  Fecha + run_id              │
//	│  KPIs: ventas recientes | disponible | en bodega | cobertura │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QUIEBRES: Prioridad | Color | Talla | Ventas 7d | Disp. ... │
//	│  TALLAS AGOTADAS                                            │
//	│  BODEGAS: Bodega | Disponible | %                           │
//	│  SERIE DIARIA: Fecha | Cantidad                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
)

var _ analysis.ReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 192, Green: 0, Blue: 0}
	colorYellow  = &props.Color{Red: 191, Green: 143, Blue: 0}
	colorGreen   = &props.Color{Red: 0, Green: 128, Blue: 0}
)

const (
	customFontFamily = "report-unicode"
	maxSeriesRows    = 31
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analysis.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	fonts  []*marotoentity.CustomFont
	family string
}

// NewMarotoPDFGenerator construye el generador con las fuentes base de PDF (sin glifos CJK).
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{family: "helvetica"}
}

// NewMarotoPDFGeneratorWithFont registra una fuente TTF Unicode para colores, tallas y
// bodegas en chino. fontPath vacío equivale a NewMarotoPDFGenerator.
func NewMarotoPDFGeneratorWithFont(fontPath string) (*MarotoPDFGenerator, error) {
	if fontPath == "" {
		return NewMarotoPDFGenerator(), nil
	}
	fonts, err := repository.New().
		AddUTF8Font(customFontFamily, fontstyle.Normal, fontPath).
		AddUTF8Font(customFontFamily, fontstyle.Bold, fontPath).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuente %s: %w", fontPath, err)
	}
	return &MarotoPDFGenerator{fonts: fonts, family: customFontFamily}, nil
}

// GenerateStyleReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStyleReport(_ context.Context, a *dto.StyleAnalysisDTO) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("pdf: análisis vacío")
	}
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("Análisis de rotación "+a.Style, true)
	if len(g.fonts) > 0 {
		builder = builder.WithCustomFonts(g.fonts)
	}
	cfg := builder.WithDefaultFont(&props.Font{Family: g.family, Size: 9}).Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(a.KPI))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("SKUs EN QUIEBRE (%d)", len(a.Shortages))))
	m.AddRows(tableHeaderRow([]column{
		{"#", 1, align.Center}, {"Color", 3, align.Left}, {"Talla", 2, align.Left},
		{"Ventas 7d", 2, align.Right}, {"Disponible", 2, align.Right}, {"Cobertura", 2, align.Right},
	}))
	m.AddRows(shortageRows(a.Shortages)...)

	m.AddRows(sectionTitle("TALLAS AGOTADAS"))
	m.AddRows(textRow(joinOrDash(a.MissingSizes)))
	if len(a.MissingSizesWithDemand) > 0 {
		m.AddRows(textRow("Con ventas registradas: " + strings.Join(a.MissingSizesWithDemand, ", ")))
	}

	m.AddRows(sectionTitle("DISPONIBLE POR BODEGA"))
	m.AddRows(tableHeaderRow([]column{
		{"Bodega", 6, align.Left}, {"Disponible", 3, align.Right}, {"%", 3, align.Right},
	}))
	m.AddRows(warehouseRows(a.Warehouses)...)

	m.AddRows(sectionTitle(fmt.Sprintf("VENTAS DIARIAS (ÚLTIMOS %d DÍAS)", a.TrendWindow)))
	m.AddRows(tableHeaderRow([]column{{"Fecha", 6, align.Left}, {"Cantidad", 6, align.Right}}))
	m.AddRows(seriesRows(a.Series)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(a *dto.StyleAnalysisDTO) core.Row {
	style := a.Style
	if style == "" {
		style = "(sin estilo)"
	}
	right := []core.Component{
		text.New("ANÁLISIS DE ROTACIÓN", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
		}),
		text.New("Generado: "+a.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
			Size: 8, Align: align.Right, Top: 7, Color: colorGray,
		}),
	}
	if a.RunID != "" {
		right = append(right, text.New("Corrida: "+a.RunID, props.Text{
			Size: 7, Align: align.Right, Top: 12, Color: colorGray,
		}))
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(style, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New(a.Report.Yesterday, props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(right...),
	)
}

func kpiRow(k dto.StyleKPIDTO) core.Row {
	cover := "-"
	if k.DaysOfCover != nil {
		cover = k.DaysOfCover.StringFixed(1) + " días"
	}
	box := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: c, Top: 5}),
		)
	}
	return row.New(14).Add(
		box(fmt.Sprintf("Ventas últimos %d días", k.WindowDays), fmt.Sprint(k.RecentSales), colorPrimary),
		box("Disponible", fmt.Sprint(k.TotalAvailable), colorPrimary),
		box("En bodega", fmt.Sprint(k.TotalOnHand), colorPrimary),
		box("Cobertura", cover, levelColor(k.Level)),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(out...)
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func shortageRows(list []dto.ShortageDTO) []core.Row {
	if len(list) == 0 {
		return []core.Row{textRow("Sin SKUs en quiebre.")}
	}
	rows := make([]core.Row, 0, len(list))
	for _, s := range list {
		cover := "agotado"
		if s.AvailableNow > 0 && s.DaysOfCover != nil {
			cover = s.DaysOfCover.StringFixed(1) + " d"
		}
		rows = append(rows, row.New(5).Add(
			cell(fmt.Sprint(s.Priority), 1, align.Center),
			cell(s.Color, 3, align.Left),
			cell(s.Size, 2, align.Left),
			cell(fmt.Sprint(s.SalesLast7d), 2, align.Right),
			cell(fmt.Sprint(s.AvailableNow), 2, align.Right),
			cell(cover, 2, align.Right),
		))
	}
	return rows
}

func warehouseRows(list []dto.WarehouseShareDTO) []core.Row {
	if len(list) == 0 {
		return []core.Row{textRow("Sin disponible.")}
	}
	rows := make([]core.Row, 0, len(list))
	for _, w := range list {
		rows = append(rows, row.New(5).Add(
			cell(w.Warehouse, 6, align.Left),
			cell(fmt.Sprint(w.Available), 3, align.Right),
			cell(w.Percent.StringFixed(1)+"%", 3, align.Right),
		))
	}
	return rows
}

// seriesRows muestra los últimos maxSeriesRows días.
func seriesRows(series []dto.DailyPointDTO) []core.Row {
	if len(series) == 0 {
		return []core.Row{textRow("Sin ventas.")}
	}
	if len(series) > maxSeriesRows {
		series = series[len(series)-maxSeriesRows:]
	}
	rows := make([]core.Row, 0, len(series))
	for _, p := range series {
		rows = append(rows, row.New(5).Add(
			cell(p.Date, 6, align.Left),
			cell(p.Label, 6, align.Right),
		))
	}
	return rows
}

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(text.New(s, props.Text{
		Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
	})))
}

func textRow(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(s, props.Text{Size: 8, Color: colorGray, Top: 1})))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func levelColor(level string) *props.Color {
	switch level {
	case "red":
		return colorRed
	case "yellow":
		return colorYellow
	case "green":
		return colorGreen
	default:
		return colorGray
	}
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
