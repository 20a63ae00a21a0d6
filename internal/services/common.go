package services

import (
	"net/http"
	"strings"

	"github.com/beego/beego/v2/core/logs"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/internal/metrics"
)

// Lista es una colección decodificada del backend. Aviso no vacío indica que el
// contenido anidado no se pudo interpretar y Items quedó vacío.
type Lista[T any] struct {
	Items []T
	Aviso string
}

// decodeRegistros aplica el decodificador de envoltura; una respuesta degradada se
// registra y se convierte en lista vacía con aviso.
func decodeRegistros(recurso string, raw []byte) ([]map[string]any, string) {
	records, err := envelope.DecodeRecords(raw)
	if err != nil {
		return records, degradar(recurso, err)
	}
	return records, ""
}

func degradar(recurso string, err error) string {
	logs.Warn("%s: contenido anidado ilegible, se muestra vacío: %v", recurso, err)
	metrics.DecodeDegradedTotal.WithLabelValues(recurso).Inc()
	return envelope.MensajeFormatoDatos
}

// resultadoEscritura interpreta la respuesta de un POST/PUT/DELETE. El backend puede
// contestar 200 con status de error dentro del cuerpo.
func resultadoEscritura(recurso string, raw []byte, exito, fallo string) (string, error) {
	p, err := envelope.DecodePlain(raw)
	if err != nil {
		// El backend confirmó con 2xx; un cuerpo ilegible no invalida la escritura.
		logs.Warn("%s: confirmación ilegible: %v", recurso, err)
		return exito, nil
	}
	if escrituraFallida(p) {
		msg := strings.TrimSpace(p.Response)
		if msg == "" {
			msg = fallo
		}
		return "", helpers.NewAppError(http.StatusBadGateway, msg, nil)
	}
	if msg := strings.TrimSpace(p.Response); msg != "" && !strings.EqualFold(msg, "ok") {
		return msg, nil
	}
	return exito, nil
}

func escrituraFallida(p envelope.Payload) bool {
	status := strings.TrimSpace(p.Status)
	if status == "" || p.Exitoso() {
		return false
	}
	if len(status) == 3 && status[0] == '2' {
		return false
	}
	return true
}

func limpiar(s string) string {
	return strings.TrimSpace(s)
}

// fechaISO deja solo la parte AAAA-MM-DD de una fecha con hora.
func fechaISO(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i > 0 {
		return s[:i]
	}
	return s
}

// fechaOpcional retorna nil para fechas vacías; el backend las espera como null.
func fechaOpcional(s string) *string {
	f := fechaISO(s)
	if f == "" {
		return nil
	}
	return &f
}

func textoOpcional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
