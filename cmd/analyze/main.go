// analyze ejecuta el análisis de un estilo sin servidor ni base de datos, a partir de un
// reporte de ventas y un feed de inventario exportados a archivo.
//
// Uso: go run ./cmd/analyze -report ventas.txt -feed inventario.txt [-encoding gb18030]
//
//	[-style Tee] [-window 7] [-pdf rotacion.pdf]
//
// Escribe el resultado en JSON por stdout; los logs y errores van a stderr.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	infrapdf "github.com/jhoicas/StyleWatch-api/internal/infrastructure/pdf"
	"github.com/jhoicas/StyleWatch-api/pkg/logger"
	"github.com/jhoicas/StyleWatch-api/pkg/textnorm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run devuelve el código de salida: 0 ok, 1 error de ejecución, 2 uso incorrecto.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	reportPath := fs.String("report", "", "archivo con el reporte de ventas")
	feedPath := fs.String("feed", "", "archivo con el feed de inventario")
	enc := fs.String("encoding", "utf-8", "codificación de los archivos: utf-8, gb18030, gbk, latin1")
	style := fs.String("style", "", "nombre del estilo (por defecto se infiere)")
	window := fs.Int("window", 0, "días de la serie diaria (7, 14 o 30)")
	pdfPath := fs.String("pdf", "", "si se indica, escribe también el reporte PDF")
	fontPath := fs.String("font", os.Getenv("PDF_FONT_PATH"), "TTF Unicode para el PDF")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *reportPath == "" && *feedPath == "" {
		fmt.Fprintln(stderr, "se requiere -report y/o -feed")
		fs.Usage()
		return 2
	}

	fail := func(step string, err error) int {
		fmt.Fprintf(stderr, "%s: %v\n", step, err)
		return 1
	}

	req := dto.AnalyzeRequest{Style: *style, TrendWindow: *window}
	var err error
	if req.ReportText, err = readText(*reportPath, *enc); err != nil {
		return fail("leer reporte", err)
	}
	if req.InventoryFeed, err = readText(*feedPath, *enc); err != nil {
		return fail("leer feed", err)
	}

	log := logger.NewWithWriter(logger.Config{Env: "development", Level: os.Getenv("LOG_LEVEL")}, stderr)
	ctx := context.Background()
	analyzer := analysis.NewStyleAnalysisUseCase(nil, nil, analysis.DefaultOptions(), log.Component("analysis"))

	var result *dto.StyleAnalysisDTO
	if *pdfPath != "" {
		gen, err := infrapdf.NewMarotoPDFGeneratorWithFont(*fontPath)
		if err != nil {
			return fail("generador PDF", err)
		}
		var pdf []byte
		pdf, result, err = analysis.NewReportUseCase(analyzer, gen).RenderPDF(ctx, req)
		if err != nil {
			return fail("análisis", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
			return fail("escribir PDF", err)
		}
		log.Info().Str("path", *pdfPath).Int("bytes", len(pdf)).Msg("PDF generado")
	} else {
		result, err = analyzer.Analyze(ctx, req)
		if err != nil {
			return fail("análisis", err)
		}
	}

	out := json.NewEncoder(stdout)
	out.SetIndent("", "  ")
	out.SetEscapeHTML(false)
	if err := out.Encode(result); err != nil {
		return fail("escribir JSON", err)
	}
	return 0
}

func readText(path, enc string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return textnorm.Decode(raw, enc)
}
