package normalize

import (
	"strings"

	"github.com/condominios-online/condominios_mid/models"
)

// Banco normaliza una cuenta; datos puede venir como objeto o como texto JSON.
func Banco(item map[string]any, index int) models.Banco {
	id, ok := toInt(item["id"])
	if !ok || id == 0 {
		id = index + 1
	}
	out := models.Banco{
		ID:           id,
		Tipo:         strings.ToUpper(orDefault(item["tipo"], models.TipoBanco)),
		Nombre:       toString(item["nombre"]),
		Apodo:        toString(item["apodo"]),
		EstadoActual: toString(item["estadoActual"]),
		Comentarios:  toString(item["comentarios"]),
	}
	if datos := ParseNested(item["datos"]); datos != nil {
		out.Datos.NumeroCuenta = toString(datos["numeroCuenta"])
		out.Datos.Moneda = orDefault(datos["mondeda"], toString(datos["moneda"]))
		if pm := asMap(datos["pagoMovil"]); pm != nil {
			out.Datos.PagoMovil = &models.PagoMovil{
				Telefono: toString(pm["telefono"]),
				Rif:      toString(pm["rif"]),
			}
		}
	}
	return out
}

// Bancos normaliza una lista completa.
func Bancos(items []map[string]any) []models.Banco {
	out := make([]models.Banco, 0, len(items))
	for i, item := range items {
		out = append(out, Banco(item, i))
	}
	return out
}

// BancosAuxiliares normaliza el catálogo de instituciones.
func BancosAuxiliares(items []map[string]any) []models.BancoAuxiliar {
	out := make([]models.BancoAuxiliar, 0, len(items))
	for _, item := range items {
		out = append(out, models.BancoAuxiliar{
			Nombre: orDefault(item["Nombre"], toString(item["nombre"])),
			Codigo: orDefault(item["Codigo"], toString(item["codigo"])),
		})
	}
	return out
}
