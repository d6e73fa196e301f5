package http

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DraftUC *billing.DraftUseCase
	PDFUC   *billing.PDFUseCase
	// Logos celda del logo; nil = /logo.png siempre 404 y PDFs sin logo.
	Logos billing.LogoProvider
	// Static formulario HTML; nil = sin formulario (solo API).
	Static fs.FS
	Log    *logger.Logger
}

// Router registra las rutas de la API y del formulario.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	invoiceHandler := NewInvoiceHandler(deps.PDFUC, deps.Logos)
	app.Get("/logo.png", invoiceHandler.Logo)

	api := app.Group("/api")
	api.Get("/company", invoiceHandler.Company)

	// Borradores (un formulario abierto = un borrador)
	drafts := api.Group("/drafts")
	draftHandler := NewDraftHandler(deps.DraftUC)
	drafts.Post("/", draftHandler.Create)
	drafts.Get("/:id", draftHandler.Get)
	drafts.Put("/:id/fields/:field", draftHandler.SetField)
	drafts.Post("/:id/items", draftHandler.AddItem)
	drafts.Patch("/:id/items/:index", draftHandler.UpdateItem)
	drafts.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	if deps.Static != nil {
		app.Use("/", filesystem.New(filesystem.Config{
			Root:  http.FS(deps.Static),
			Index: "index.html",
		}))
	}
}

// RequestLogger registra cada request con zerolog; los 5xx a nivel error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			cause := err
			if cause == nil {
				cause, _ = c.Locals(errorLocalsKey).(error)
			}
			ev = log.Error().Err(cause)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
