package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/smag/cotizador-api/internal/application/usecase"
	infraai "github.com/smag/cotizador-api/internal/infrastructure/ai"
	"github.com/smag/cotizador-api/internal/infrastructure/catalog"
	infrapdf "github.com/smag/cotizador-api/internal/infrastructure/pdf"
	"github.com/smag/cotizador-api/internal/infrastructure/sequence"
	"github.com/smag/cotizador-api/internal/infrastructure/storage"
	httpRouter "github.com/smag/cotizador-api/internal/interfaces/http"
	"github.com/smag/cotizador-api/pkg/config"
	"github.com/smag/cotizador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	baseURL := cfg.Quote.BaseURL(cfg.HTTP.Port)

	// Infraestructura: catálogo estático, consecutivo diario, IA, PDF
	catalogStore := catalog.NewJSONStore(cfg.Quote.CatalogPath, log)
	counter := sequence.NewCounter(cfg.Quote.CounterPath)
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	pdfGenerator := infrapdf.NewMarotoQuotationGenerator()
	thumbFetcher := infrapdf.NewHTTPThumbnailFetcher()
	pdfStore := storage.NewPDFStore(cfg.Quote.PDFDir)

	pricing := usecase.NewPricingCalculator()
	quotationUC := usecase.NewQuotationUseCase(
		geminiSvc, catalogStore, pricing, counter,
		pdfGenerator, thumbFetcher, pdfStore, baseURL, log,
	)
	historyUC := usecase.NewHistoryUseCase(pdfStore, baseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // finalize genera el PDF inline
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// El frontend (Next.js) corre en otro origen
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cotizador S-MAG API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		QuotationUC: quotationUC,
		HistoryUC:   historyUC,
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
