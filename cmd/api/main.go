package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/invoice-pdf/docs"
	"github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	infralogo "github.com/jhoicas/invoice-pdf/internal/infrastructure/logo"
	"github.com/jhoicas/invoice-pdf/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/invoice-pdf/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/invoice-pdf/internal/interfaces/http"
	"github.com/jhoicas/invoice-pdf/pkg/config"
	"github.com/jhoicas/invoice-pdf/pkg/logger"
	"github.com/jhoicas/invoice-pdf/web"
)

// @title        Invoice PDF API
// @version      1.0
// @description  Formulario de factura por horas y generación del PDF con membrete.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("layout", cfg.PDF.Layout).
		Msg("iniciando aplicación")

	ctx, cancelLoad := context.WithCancel(context.Background())
	defer cancelLoad()

	// Logo: carga en segundo plano; si se descarga un PDF antes, sale sin logo.
	logoCell := &infralogo.Cell{}
	infralogo.NewLoader(cfg.Logo.Source, cfg.Logo.Timeout, logoCell, log.Named("logo")).Start(ctx)

	pdfGenerator, err := infrapdf.NewGenerator(cfg.PDF.Layout)
	if err != nil {
		log.Fatal().Err(err).Msg("PDF_LAYOUT")
	}

	company := entity.Company{
		Name:           cfg.Company.Name,
		Location:       cfg.Company.Location,
		Website:        cfg.Company.Website,
		Email:          cfg.Company.Email,
		Mobile:         cfg.Company.Mobile,
		CurrencySymbol: cfg.Company.CurrencySymbol,
	}

	draftRepo := memory.NewDraftRepository(cfg.Draft.TTL)
	draftUC := billing.NewDraftUseCase(draftRepo)
	pdfUC := billing.NewPDFUseCase(draftRepo, pdfGenerator, logoCell, company)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice PDF API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"logo":    logoCell.Get() != nil,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DraftUC: draftUC,
		PDFUC:   pdfUC,
		Logos:   logoCell,
		Static:  web.Static(),
		Log:     log.Named("http"),
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
	cancelLoad()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
