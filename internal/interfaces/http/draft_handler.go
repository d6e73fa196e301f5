package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-pdf/internal/application/billing"
	"github.com/jhoicas/invoice-pdf/internal/application/dto"
)

// DraftHandler maneja la edición del borrador desde el formulario.
type DraftHandler struct {
	uc *billing.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *billing.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir borrador de factura
// @Description  Crea una factura nueva en memoria: INV-001, fecha de hoy y una línea vacía.
// @Tags         drafts
// @Produce      json
// @Success      201  {object}  dto.InvoiceResponse
// @Router       /api/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Consultar borrador
// @Tags         drafts
// @Produce      json
// @Param        id   path      string  true  "ID del borrador"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetField godoc
// @Summary      Editar campo de cabecera
// @Description  field: customerName | invoiceNumber | date. Se acepta cualquier texto.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id     path  string               true  "ID del borrador"
// @Param        field  path  string               true  "customerName | invoiceNumber | date"
// @Param        body   body  dto.SetFieldRequest  true  "valor"
// @Success      200    {object}  dto.InvoiceResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/fields/{field} [put]
func (h *DraftHandler) SetField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetField(c.UserContext(), c.Params("id"), c.Params("field"), in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar línea
// @Tags         drafts
// @Produce      json
// @Param        id   path      string  true  "ID del borrador"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/items [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	out, err := h.uc.AddItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Editar línea
// @Description  field: name | hours | pricePerHour. Un número inválido o vacío queda en 0.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        id     path  string                 true  "ID del borrador"
// @Param        index  path  int                    true  "posición de la línea (desde 0)"
// @Param        body   body  dto.UpdateItemRequest  true  "campo y valor"
// @Success      200    {object}  dto.InvoiceResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/items/{index} [patch]
func (h *DraftHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return badBody(c)
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateItem(c.UserContext(), c.Params("id"), index, in.Field, in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
