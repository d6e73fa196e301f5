package repository

import "github.com/jhoicas/invoice-pdf/internal/domain/entity"

// DraftRepository define el puerto de almacenamiento de facturas en edición.
// Las implementaciones entregan copias: nadie fuera del repositorio comparte
// el slice de líneas de un borrador.
type DraftRepository interface {
	Create(id string, invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// Update aplica fn sobre el borrador bajo exclusión mutua y devuelve el resultado.
	// Si fn retorna error el borrador queda intacto.
	Update(id string, fn func(invoice *entity.Invoice) error) (*entity.Invoice, error)
}
