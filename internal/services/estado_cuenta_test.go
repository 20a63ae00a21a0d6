package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condominios-online/condominios_mid/models"
)

func lineas() []models.Movimiento {
	return []models.Movimiento{
		{ID: "1", Fecha: "2024-02-01", Tipo: "COB", Concepto: "Pago Enero", Credito: decimal.NewFromInt(30)},
		{ID: "2", Fecha: "15/01/2024", Tipo: "NDE", Concepto: "Cuota", Debito: decimal.NewFromInt(100)},
		{ID: "3", Fecha: "sin fecha", Tipo: "nce", Concepto: "Ajuste", Credito: decimal.NewFromInt(5)},
	}
}

func ids(lines []models.Movimiento) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.ID)
	}
	return out
}

func TestFiltrar(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(Filtrar(lineas(), "enero")))
	assert.Equal(t, []string{"3"}, ids(Filtrar(lineas(), "NCE")))
	assert.Equal(t, []string{"2"}, ids(Filtrar(lineas(), "100")))
	assert.Len(t, Filtrar(lineas(), "  "), 3)
	assert.Empty(t, Filtrar(lineas(), "zzz"))
}

func TestOrdenarPorFecha(t *testing.T) {
	assert.Equal(t, []string{"3", "2", "1"}, ids(Ordenar(lineas(), "fecha", true)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Ordenar(lineas(), "FECHA", false)))
}

func TestOrdenarPorMontoYTexto(t *testing.T) {
	assert.Equal(t, []string{"2", "1", "3"}, ids(Ordenar(lineas(), "debito", false)))
	assert.Equal(t, []string{"2", "3", "1"}, ids(Ordenar(lineas(), "creditos", true)))
	assert.Equal(t, []string{"3", "2", "1"}, ids(Ordenar(lineas(), "concepto", true)))
}

func TestOrdenarColumnaDesconocidaNoCambia(t *testing.T) {
	orig := lineas()
	got := Ordenar(orig, "color", true)
	assert.Equal(t, ids(orig), ids(got))
	got[0].ID = "x"
	assert.Equal(t, "1", orig[0].ID)
}

func TestResumenEstadoCuenta(t *testing.T) {
	r := ResumenEstadoCuenta(lineas())
	assert.Equal(t, 3, r.Total)
	assert.True(t, decimal.NewFromInt(100).Equal(r.TotalDebito))
	assert.True(t, decimal.NewFromInt(35).Equal(r.TotalCredito))

	vacio := ResumenEstadoCuenta(nil)
	require.NotNil(t, vacio.Movimientos)
	assert.Zero(t, vacio.Total)
}
