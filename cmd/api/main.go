package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
	"github.com/jhoicas/StyleWatch-api/internal/domain/inventory"
	"github.com/jhoicas/StyleWatch-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/StyleWatch-api/internal/infrastructure/pdf"
	"github.com/jhoicas/StyleWatch-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/StyleWatch-api/internal/interfaces/http"
	"github.com/jhoicas/StyleWatch-api/pkg/config"
	"github.com/jhoicas/StyleWatch-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("db_enabled", cfg.DB.Enabled).
		Ints("trend_windows", cfg.Analysis.TrendWindows).
		Msg("iniciando aplicación")

	opts := analysis.Options{
		TrendWindows: cfg.Analysis.TrendWindows,
		Thresholds: inventory.CoverThresholds{
			Red:        decimal.NewFromFloat(cfg.Analysis.DocRed),
			Yellow:     decimal.NewFromFloat(cfg.Analysis.DocYellow),
			WindowDays: cfg.Analysis.MinSalesWindowDays,
		},
	}
	recorder := metrics.New("stylewatch")

	// Sin DB el servicio analiza pero no guarda ni expone historial.
	ctx := context.Background()
	var (
		pool      *pgxpool.Pool
		txRunner  analysis.TxRunner
		historyUC *analysis.HistoryUseCase
	)
	if cfg.DB.Enabled {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
		}

		txRunner = postgres.NewTxRunner(pool)
		historyUC = analysis.NewHistoryUseCase(
			postgres.NewSaleRecordRepository(pool),
			postgres.NewInventorySnapshotRepository(pool),
			postgres.NewAnalysisRunRepository(pool),
			opts, log.Component("history"),
		)
	} else {
		log.Warn().Msg("DB_ENABLED=false: persistencia e historial deshabilitados")
	}

	analyzerUC := analysis.NewStyleAnalysisUseCase(txRunner, recorder, opts, log.Component("analysis"))

	// PDF: reporte de rotación del estilo
	pdfGenerator, err := infrapdf.NewMarotoPDFGeneratorWithFont(cfg.PDF.FontPath)
	if err != nil {
		log.Fatal().Err(err).Msg("generador PDF")
	}
	reportUC := analysis.NewReportUseCase(analyzerUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    8 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(recorder.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StyleWatch API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok", "service": cfg.App.Name, "store": pool != nil}
		if pool != nil {
			pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(pingCtx); err != nil {
				status["status"] = "degraded"
				return c.Status(fiber.StatusServiceUnavailable).JSON(status)
			}
		}
		return c.JSON(status)
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Analyzer:  analyzerUC,
		Reports:   reportUC,
		History:   historyUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
