package memory_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf/internal/infrastructure/memory"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDraftRepository_CreateYGet(t *testing.T) {
	repo := memory.NewDraftRepository(0)
	inv := entity.NewInvoice(time.Now())
	require.NoError(t, repo.Create("a", inv))

	// El repositorio guarda una copia.
	inv.CustomerName = "fuera del repo"

	got, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "", got.CustomerName)

	_, err = repo.GetByID("b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftRepository_CreateInvalido(t *testing.T) {
	repo := memory.NewDraftRepository(0)
	assert.ErrorIs(t, repo.Create("", entity.NewInvoice(time.Now())), domain.ErrInvalidInput)
	assert.ErrorIs(t, repo.Create("x", nil), domain.ErrInvalidInput)
}

func TestDraftRepository_UpdateConErrorNoPublica(t *testing.T) {
	repo := memory.NewDraftRepository(0)
	require.NoError(t, repo.Create("a", entity.NewInvoice(time.Now())))

	boom := errors.New("boom")
	_, err := repo.Update("a", func(inv *entity.Invoice) error {
		inv.CustomerName = "parcial"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "", got.CustomerName)
}

func TestDraftRepository_ExpiraPorInactividad(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo := memory.NewDraftRepository(time.Hour).WithClock(clock.Now)
	require.NoError(t, repo.Create("viejo", entity.NewInvoice(clock.Now())))

	clock.Advance(30 * time.Minute)
	_, err := repo.GetByID("viejo")
	require.NoError(t, err, "el acceso renueva la inactividad")

	clock.Advance(61 * time.Minute)
	require.NoError(t, repo.Create("nuevo", entity.NewInvoice(clock.Now())))
	assert.Equal(t, 1, repo.Len(), "Create barre los expirados")

	_, err = repo.GetByID("viejo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftRepository_UpdatesConcurrentes(t *testing.T) {
	repo := memory.NewDraftRepository(0)
	require.NoError(t, repo.Create("a", entity.NewInvoice(time.Now())))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update("a", func(inv *entity.Invoice) error {
				inv.AddItem()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Len(t, got.Items, 51)
}
