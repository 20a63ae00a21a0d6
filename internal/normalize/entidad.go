package normalize

import (
	"strings"

	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/models"
)

// Entidad normaliza un registro de /entidades/. index es la posición en la lista
// y se usa como id (index+1) cuando el registro no trae uno.
func Entidad(item map[string]any, index int) models.Entidad {
	id, ok := toInt(item["id"])
	if !ok || id == 0 {
		id = index + 1
	}
	clase := toString(item["clase"])
	estado := toString(item["estadoActual"])

	saldo := "0.00"
	if item["saldoActual"] != nil {
		saldo = toString(item["saldoActual"])
	}

	e := models.Entidad{
		ID:             id,
		Clase:          clase,
		Nombre:         clase,
		Referencia:     orDefault(item["referencia"], models.NoAplica),
		Representante:  orDefault(item["representante"], models.NoAplica),
		Propietario:    Propietario(item["propietario"]),
		Inquilino:      Inquilino(item["inquilino"]),
		SaldoActual:    saldo,
		Clasificacion:  toString(item["clasificacion"]),
		FecUltGestion:  toString(item["fecUltGestion"]),
		FecProxGestion: toString(item["fecProxGestion"]),
		Comentarios:    toString(item["comentarios"]),
		EstadoActual:   estado,
		Activo:         estado == "" || strings.EqualFold(estado, models.EstadoActivo),
		Condicion:      toString(item["condicion"]),
		Vehiculos:      Vehiculos(item["vehiculos"]),
		Residentes:     Residentes(item["residentes"]),
	}
	e.Condicion = CondicionDe(e)
	e.Representante = RepresentanteDe(e, e.Condicion)
	return e
}

// Entidades normaliza una lista completa.
func Entidades(items []map[string]any) []models.Entidad {
	out := make([]models.Entidad, 0, len(items))
	for i, item := range items {
		out = append(out, Entidad(item, i))
	}
	return out
}

// CondicionDe deriva la condición canónica. Sin condición conocida, una entidad con
// inquilino se considera Alquilada y cualquier otra Habitada.
func CondicionDe(e models.Entidad) string {
	switch strings.ToUpper(strings.TrimSpace(e.Condicion)) {
	case "ALQUILADA":
		return models.CondicionAlquilada
	case "DESHABITADA":
		return models.CondicionDeshabitada
	case "HABITADA":
		return models.CondicionHabitada
	}
	if e.Inquilino.Presente() {
		return models.CondicionAlquilada
	}
	return models.CondicionHabitada
}

// RepresentanteDe deriva el representante canónico dada la condición ya resuelta.
func RepresentanteDe(e models.Entidad, condicion string) string {
	r := strings.TrimSpace(e.Representante)
	if r != "" {
		canon := strings.ToUpper(r[:1]) + strings.ToLower(r[1:])
		if canon == models.RepresentantePropietario || canon == models.RepresentanteInquilino {
			return canon
		}
	}
	if condicion == models.CondicionAlquilada && e.Inquilino.Presente() {
		return models.RepresentanteInquilino
	}
	return models.RepresentantePropietario
}

// Vehiculos acepta un arreglo o un texto JSON; "NULL" y los textos inválidos producen una lista vacía.
func Vehiculos(value any) []models.Vehiculo {
	out := []models.Vehiculo{}
	for _, m := range listaDeObjetos(value) {
		id, _ := toInt(m["id"])
		out = append(out, models.Vehiculo{
			ID:     id,
			Placa:  toString(m["placa"]),
			Marca:  toString(m["marca"]),
			Modelo: toString(m["modelo"]),
			Color:  toString(m["color"]),
		})
	}
	return out
}

// Residentes sigue la misma regla que Vehiculos.
func Residentes(value any) []models.Residente {
	out := []models.Residente{}
	for _, m := range listaDeObjetos(value) {
		id, _ := toInt(m["id"])
		out = append(out, models.Residente{
			ID:            id,
			Nombre:        toString(m["nombre"]),
			FecNacimiento: toString(m["fecNacimiento"]),
			Parentesco:    toString(m["parentesco"]),
			Status:        toBool(m["status"], true),
		})
	}
	return out
}

func listaDeObjetos(value any) []map[string]any {
	var list []any
	switch v := value.(type) {
	case []any:
		list = v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || strings.EqualFold(trimmed, "NULL") {
			return nil
		}
		parsed, err := envelope.ParseNestedJSON(trimmed)
		if err != nil {
			return nil
		}
		list, _ = parsed.([]any)
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m := asMap(item); m != nil {
			out = append(out, m)
		}
	}
	return out
}
