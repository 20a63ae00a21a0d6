package services

import (
	"github.com/shopspring/decimal"

	"github.com/condominios-online/condominios_mid/models"
)

// Distribuir suma los gastos del período y calcula la cuota por inmueble. Sin
// inmuebles la cuota es cero.
func Distribuir(ordinarios, extraordinarios []models.GastoItem, nroInmuebles int) models.DistribucionGastos {
	totalOrd := sumarGastos(ordinarios)
	totalExt := sumarGastos(extraordinarios)
	total := totalOrd.Add(totalExt)

	cuota := decimal.Zero
	if nroInmuebles > 0 {
		cuota = total.DivRound(decimal.NewFromInt(int64(nroInmuebles)), 2)
	} else {
		nroInmuebles = 0
	}
	return models.DistribucionGastos{
		TotalOrdinarios:      totalOrd,
		TotalExtraordinarios: totalExt,
		TotalGeneral:         total,
		NroInmuebles:         nroInmuebles,
		Cuota:                cuota,
	}
}

func sumarGastos(items []models.GastoItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Monto)
	}
	return total
}
