// invoicegen genera invoice.pdf sin levantar el servidor, a partir de un JSON:
//
//	{"customerName": "...", "invoiceNumber": "INV-002", "date": "2024-05-17",
//	 "items": [{"name": "...", "hours": 2, "pricePerHour": 10}]}
//
// El membrete sale de la misma configuración que la API (COMPANY_*, LOGO_SOURCE, PDF_LAYOUT).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/internal/application/dto"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	infralogo "github.com/jhoicas/invoice-pdf/internal/infrastructure/logo"
	infrapdf "github.com/jhoicas/invoice-pdf/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-pdf/pkg/config"
	"github.com/jhoicas/invoice-pdf/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "invoicegen",
		Usage: "genera el PDF de una factura desde un archivo JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "JSON de la factura", Required: true},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "PDF de salida", Value: billing.InvoiceFilename},
			&cli.StringFlag{Name: "logo", Usage: "logo (ruta o URL); por defecto LOGO_SOURCE"},
			&cli.BoolFlag{Name: "no-logo", Usage: "omite el logo"},
			&cli.StringFlag{Name: "layout", Usage: "letterhead | grid; por defecto PDF_LAYOUT"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "invoicegen: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})

	raw, err := os.ReadFile(c.String("in"))
	if err != nil {
		return fmt.Errorf("leer %s: %w", c.String("in"), err)
	}
	var doc dto.InvoiceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decodificar %s: %w", c.String("in"), err)
	}
	inv, err := billing.BuildInvoice(doc, time.Now())
	if err != nil {
		return err
	}

	layout := cfg.PDF.Layout
	if c.IsSet("layout") {
		layout = c.String("layout")
	}
	gen, err := infrapdf.NewGenerator(layout)
	if err != nil {
		return err
	}

	// Aquí sí se espera la carga: no hay usuario que pueda adelantarse.
	var logo *entity.Logo
	if !c.Bool("no-logo") {
		source := cfg.Logo.Source
		if c.IsSet("logo") {
			source = c.String("logo")
		}
		cell := &infralogo.Cell{}
		<-infralogo.NewLoader(source, cfg.Logo.Timeout, cell, log.Named("logo")).Start(c.Context)
		logo = cell.Get()
	}

	company := &entity.Company{
		Name:           cfg.Company.Name,
		Location:       cfg.Company.Location,
		Website:        cfg.Company.Website,
		Email:          cfg.Company.Email,
		Mobile:         cfg.Company.Mobile,
		CurrencySymbol: cfg.Company.CurrencySymbol,
	}
	pdfBytes, err := billing.RenderDocument(c.Context, gen, inv, company, logo)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.String("out"), pdfBytes, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", c.String("out"), err)
	}

	log.Info().
		Str("out", c.String("out")).
		Int("items", len(inv.Items)).
		Str("total", entity.FormatAmount(inv.Total())).
		Msg("factura generada")
	return nil
}
