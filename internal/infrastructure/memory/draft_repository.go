// Package memory implementa los repositorios en memoria del proceso.
// Los borradores no se persisten: desaparecen al reiniciar o tras el TTL de inactividad.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepository)(nil)

type draftEntry struct {
	invoice  *entity.Invoice
	lastUsed time.Time
}

// DraftRepository almacena borradores por ID con expiración por inactividad.
type DraftRepository struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry
	ttl    time.Duration
	now    func() time.Time
}

// NewDraftRepository construye el repositorio. ttl <= 0 desactiva la expiración.
func NewDraftRepository(ttl time.Duration) *DraftRepository {
	return &DraftRepository{
		drafts: make(map[string]*draftEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (r *DraftRepository) WithClock(now func() time.Time) *DraftRepository {
	r.now = now
	return r
}

// Create guarda una copia del borrador y barre los expirados.
func (r *DraftRepository) Create(id string, invoice *entity.Invoice) error {
	if id == "" || invoice == nil {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)
	r.drafts[id] = &draftEntry{invoice: invoice.Clone(), lastUsed: now}
	return nil
}

// GetByID devuelve una copia del borrador o domain.ErrNotFound.
func (r *DraftRepository) GetByID(id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return e.invoice.Clone(), nil
}

// Update muta una copia y solo la publica si fn no falla.
func (r *DraftRepository) Update(id string, fn func(invoice *entity.Invoice) error) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	working := e.invoice.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	e.invoice = working
	return working.Clone(), nil
}

// Len cantidad de borradores vivos.
func (r *DraftRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}

func (r *DraftRepository) lookupLocked(id string) (*draftEntry, error) {
	e, ok := r.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.drafts, id)
		return nil, domain.ErrNotFound
	}
	e.lastUsed = now
	return e, nil
}

func (r *DraftRepository) sweepLocked(now time.Time) {
	for id, e := range r.drafts {
		if r.expired(e, now) {
			delete(r.drafts, id)
		}
	}
}

func (r *DraftRepository) expired(e *draftEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastUsed) > r.ttl
}
