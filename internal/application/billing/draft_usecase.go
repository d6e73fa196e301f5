package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-pdf/internal/application/dto"
	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf/internal/domain/repository"
)

// DraftUseCase casos de uso del formulario: abrir un borrador y editarlo.
type DraftUseCase struct {
	repo  repository.DraftRepository
	now   func() time.Time
	newID func() string
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(repo repository.DraftRepository) *DraftUseCase {
	return &DraftUseCase{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock reemplaza el reloj usado para la fecha por defecto (tests).
func (uc *DraftUseCase) WithClock(now func() time.Time) *DraftUseCase {
	uc.now = now
	return uc
}

// Create abre un borrador nuevo con los valores por defecto.
func (uc *DraftUseCase) Create(_ context.Context) (*dto.InvoiceResponse, error) {
	id := uc.newID()
	inv := entity.NewInvoice(uc.now())
	if err := uc.repo.Create(id, inv); err != nil {
		return nil, fmt.Errorf("borrador: crear: %w", err)
	}
	return ToInvoiceResponse(id, inv), nil
}

// Get devuelve el estado actual del borrador.
func (uc *DraftUseCase) Get(_ context.Context, id string) (*dto.InvoiceResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(id, inv), nil
}

// SetField reemplaza customerName, invoiceNumber o date.
func (uc *DraftUseCase) SetField(_ context.Context, id, field, value string) (*dto.InvoiceResponse, error) {
	return uc.update(id, func(inv *entity.Invoice) error {
		return inv.SetField(field, value)
	})
}

// AddItem agrega una línea vacía al final.
func (uc *DraftUseCase) AddItem(_ context.Context, id string) (*dto.InvoiceResponse, error) {
	return uc.update(id, func(inv *entity.Invoice) error {
		inv.AddItem()
		return nil
	})
}

// UpdateItem reemplaza un campo de la línea index.
func (uc *DraftUseCase) UpdateItem(_ context.Context, id string, index int, field, value string) (*dto.InvoiceResponse, error) {
	return uc.update(id, func(inv *entity.Invoice) error {
		return inv.UpdateItem(index, field, value)
	})
}

func (uc *DraftUseCase) update(id string, fn func(inv *entity.Invoice) error) (*dto.InvoiceResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(id, inv), nil
}

// ToInvoiceResponse arma la respuesta con totales por línea y total general.
func ToInvoiceResponse(id string, inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			Name:         it.Name,
			Hours:        it.Hours.String(),
			PricePerHour: it.PricePerHour.String(),
			Total:        entity.FormatAmount(it.LineTotal()),
		})
	}
	return &dto.InvoiceResponse{
		ID:            id,
		CustomerName:  inv.CustomerName,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		Items:         items,
		Total:         entity.FormatAmount(inv.Total()),
	}
}
