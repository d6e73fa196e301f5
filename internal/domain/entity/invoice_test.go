package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf/internal/domain"
	"github.com/jhoicas/invoice-pdf/internal/domain/entity"
)

var testNow = time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("COT", -5*3600))

func TestNewInvoice_ValoresPorDefecto(t *testing.T) {
	inv := entity.NewInvoice(testNow)

	assert.Equal(t, "INV-001", inv.InvoiceNumber)
	assert.Equal(t, "", inv.CustomerName)
	// 23:30 en UTC-5 ya es el día siguiente en UTC.
	assert.Equal(t, "2024-03-10", inv.Date)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, entity.LineItem{}, inv.Items[0])
	assert.True(t, inv.Total().IsZero())
}

func TestSetField(t *testing.T) {
	inv := entity.NewInvoice(testNow)

	require.NoError(t, inv.SetField(entity.FieldCustomerName, "ACME Ltd"))
	require.NoError(t, inv.SetField(entity.FieldInvoiceNumber, ""))
	require.NoError(t, inv.SetField(entity.FieldDate, "no es una fecha"))

	assert.Equal(t, "ACME Ltd", inv.CustomerName)
	assert.Equal(t, "", inv.InvoiceNumber)
	assert.Equal(t, "no es una fecha", inv.Date)

	err := inv.SetField("items", "x")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestAddItem_AgregaLineaPorDefecto(t *testing.T) {
	inv := entity.NewInvoice(testNow)
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldName, "Diseño"))

	n := inv.AddItem()

	assert.Equal(t, 2, n)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, entity.LineItem{}, inv.Items[1])
	assert.Equal(t, "Diseño", inv.Items[0].Name, "la línea previa no cambia")
}

func TestUpdateItem_SoloCambiaElCampoIndicado(t *testing.T) {
	inv := entity.NewInvoice(testNow)
	inv.AddItem()
	inv.AddItem()
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldHours, "3"))
	require.NoError(t, inv.UpdateItem(2, entity.ItemFieldPricePerHour, "12.5"))
	before := inv.Clone()

	require.NoError(t, inv.UpdateItem(1, entity.ItemFieldName, "Soporte"))

	assert.Equal(t, "Soporte", inv.Items[1].Name)
	assert.True(t, inv.Items[1].Hours.IsZero())
	assert.True(t, inv.Items[1].PricePerHour.IsZero())
	assert.Equal(t, before.Items[0], inv.Items[0])
	assert.Equal(t, before.Items[2], inv.Items[2])
}

func TestUpdateItem_Errores(t *testing.T) {
	inv := entity.NewInvoice(testNow)

	assert.ErrorIs(t, inv.UpdateItem(1, entity.ItemFieldName, "x"), domain.ErrItemOutOfRange)
	assert.ErrorIs(t, inv.UpdateItem(-1, entity.ItemFieldName, "x"), domain.ErrItemOutOfRange)
	assert.ErrorIs(t, inv.UpdateItem(0, "total", "x"), domain.ErrUnknownField)
}

func TestUpdateItem_NumeroInvalidoQuedaEnCero(t *testing.T) {
	inv := entity.NewInvoice(testNow)
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldHours, "4"))
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldPricePerHour, "10"))

	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldHours, ""))
	assert.True(t, inv.Items[0].Hours.IsZero())

	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldPricePerHour, "abc"))
	assert.True(t, inv.Items[0].PricePerHour.IsZero())
	assert.Equal(t, "0.00", entity.FormatAmount(inv.Total()))
}

func TestTotal_Ejemplo(t *testing.T) {
	inv := entity.NewInvoice(testNow)
	inv.AddItem()
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldHours, "2"))
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldPricePerHour, "10"))
	require.NoError(t, inv.UpdateItem(1, entity.ItemFieldHours, "1.5"))
	require.NoError(t, inv.UpdateItem(1, entity.ItemFieldPricePerHour, "20"))

	assert.Equal(t, "50.00", entity.FormatAmount(inv.Total()))
	// Idempotente: llamar de nuevo no cambia el resultado.
	assert.True(t, inv.Total().Equal(inv.Total()))
}

func TestTotal_IgualASumaDeLineas(t *testing.T) {
	inv := &entity.Invoice{Items: []entity.LineItem{
		{Hours: decimal.NewFromInt(7), PricePerHour: decimal.RequireFromString("33.3")},
		{Hours: decimal.RequireFromString("0.25"), PricePerHour: decimal.NewFromInt(80)},
		{},
	}}

	sum := decimal.Zero
	for _, it := range inv.Items {
		sum = sum.Add(it.Hours.Mul(it.PricePerHour))
	}
	assert.True(t, sum.Equal(inv.Total()))
	assert.Equal(t, "253.10", entity.FormatAmount(inv.Total()))
}

func TestClone_NoCompartePosiciones(t *testing.T) {
	inv := entity.NewInvoice(testNow)
	snap := inv.Clone()

	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldName, "cambio"))
	inv.AddItem()

	assert.Equal(t, "", snap.Items[0].Name)
	assert.Len(t, snap.Items, 1)
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"33.333": "33.33",
		"2.005":  "2.01",
		"0":      "0.00",
		"1500":   "1500.00",
		"-1.005": "-1.01",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "12.5", entity.ParseAmount(" 12.5 ").String())
	assert.True(t, entity.ParseAmount("").IsZero())
	assert.True(t, entity.ParseAmount("NaN").IsZero())
	assert.True(t, entity.ParseAmount("1,5").IsZero())
	assert.Equal(t, "999999999999999", entity.ParseAmount("999999999999999").String())
	assert.Equal(t, "0.001", entity.ParseAmount("1e-3").String())
}

func TestParseAmount_FueraDeRangoQuedaEnCero(t *testing.T) {
	for _, in := range []string{
		"1e2000000000",
		"1e-2000000000",
		"1e5000000",
		"1e15",
		"-1e15",
		"1" + strings.Repeat("0", 80),
	} {
		assert.True(t, entity.ParseAmount(in).IsZero(), in)
	}
}

func TestUpdateItem_ExponenteEnormeNoRompeElTotal(t *testing.T) {
	inv := entity.NewInvoice(testNow)
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldHours, "1e2000000000"))
	require.NoError(t, inv.UpdateItem(0, entity.ItemFieldPricePerHour, "1e2000000000"))

	assert.NotPanics(t, func() {
		assert.Equal(t, "0.00", entity.FormatAmount(inv.Total()))
	})
	assert.Equal(t, "0", inv.Items[0].Hours.String())
}
