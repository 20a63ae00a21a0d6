package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/clients"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
)

var sesionPrueba = &session.Session{ID: "s-1", Token: "tok", UserID: "7"}

func backend(t *testing.T, h http.HandlerFunc) *clients.CondominiosClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return clients.NewCondominiosClient(srv.URL, 2*time.Second)
}

func envuelto(t *testing.T, list ...any) []byte {
	t.Helper()
	if list == nil {
		list = []any{}
	}
	raw, err := envelope.Encode(list)
	require.NoError(t, err)
	return raw
}

func leerCuerpo(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func statusDe(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return helpers.AsAppError(err, "").Status
}

func TestEntidadesListar(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entidades/", r.URL.Path)
		_, _ = w.Write(envuelto(t, map[string]any{"id": 1, "referencia": "A-1", "clase": "Apto"}))
	})

	lista, err := NewEntidadesService(c).Listar(context.Background(), sesionPrueba)
	require.NoError(t, err)
	assert.Empty(t, lista.Aviso)
	require.Len(t, lista.Items, 1)
	assert.Equal(t, "A-1", lista.Items[0].Referencia)
	assert.Equal(t, "Apto", lista.Items[0].Nombre)
}

func TestEntidadesListarDegradada(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"@res":"esto no es json"}]}`))
	})

	lista, err := NewEntidadesService(c).Listar(context.Background(), sesionPrueba)
	require.NoError(t, err)
	assert.NotNil(t, lista.Items)
	assert.Empty(t, lista.Items)
	assert.Equal(t, envelope.MensajeFormatoDatos, lista.Aviso)
}

func TestEntidadesListarErrorBackend(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"caído"}`))
	})

	_, err := NewEntidadesService(c).Listar(context.Background(), sesionPrueba)
	assert.Equal(t, http.StatusBadGateway, statusDe(t, err))
	assert.Equal(t, "caído", helpers.AsAppError(err, "").Message)
}

func TestEntidadesObtener(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/entidades/4":
			_, _ = w.Write(envuelto(t, map[string]any{"id": 4, "saldoActual": "80.00", "clasificacion": nil}))
		default:
			_, _ = w.Write(envuelto(t))
		}
	})
	svc := NewEntidadesService(c)

	e, aviso, err := svc.Obtener(context.Background(), sesionPrueba, 4, map[string]any{"referencia": "B-2", "clasificacion": "MOROSO"})
	require.NoError(t, err)
	assert.Empty(t, aviso)
	assert.Equal(t, 4, e.ID)
	assert.Equal(t, "B-2", e.Referencia)
	assert.Equal(t, "80.00", e.SaldoActual)
	assert.Equal(t, "MOROSO", e.Clasificacion)
	assert.Equal(t, models.CondicionHabitada, e.Condicion)

	_, _, err = svc.Obtener(context.Background(), sesionPrueba, 9, nil)
	assert.Equal(t, http.StatusNotFound, statusDe(t, err))
}

func TestEntidadesListaYDetalleCoinciden(t *testing.T) {
	registro := map[string]any{"id": 6, "condicion": "ALQUILADA", "representante": "INQUILINO", "inquilino": `{"nombre":"Rosa","telefono":"0412"}`}
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(envuelto(t, registro))
	})
	svc := NewEntidadesService(c)

	lista, err := svc.Listar(context.Background(), sesionPrueba)
	require.NoError(t, err)
	require.Len(t, lista.Items, 1)

	detalle, _, err := svc.Obtener(context.Background(), sesionPrueba, 6, nil)
	require.NoError(t, err)

	assert.Equal(t, models.CondicionAlquilada, lista.Items[0].Condicion)
	assert.Equal(t, lista.Items[0].Condicion, detalle.Condicion)
	assert.Equal(t, models.RepresentanteInquilino, lista.Items[0].Representante)
	assert.Equal(t, lista.Items[0].Representante, detalle.Representante)
}

func TestBuildEntidadPayload(t *testing.T) {
	inactiva := false
	p, err := BuildEntidadPayload(internaldto.EntidadRequest{
		Clase:         " Apto 4B ",
		Referencia:    "A-4B",
		SaldoActual:   "1.234,56",
		FecUltGestion: "2024-05-01T00:00:00Z",
		EstadoActual:  &inactiva,
		Propietario:   models.Propietario{Nombre: "Ana"},
		Inquilino:     models.Inquilino{Cedula: "V-9"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Apto 4B", p.Clase)
	assert.Equal(t, p.Clase, p.Nombre)
	assert.Equal(t, "propietario", p.Representante)
	assert.Equal(t, "HABITADA", p.Condicion)
	assert.Equal(t, models.EstadoInactivo, p.EstadoActual)
	assert.Equal(t, models.ClasificacionSolvente, p.Clasificacion)
	assert.InDelta(t, 1234.56, p.SaldoActual, 0.0001)
	require.NotNil(t, p.FecUltGestion)
	assert.Equal(t, "2024-05-01", *p.FecUltGestion)
	assert.Nil(t, p.FecProxGestion)
	assert.JSONEq(t, `{"nombre":"Ana","cedula":"","telefonos":{"principal":"","secundario":""},"correos":[],"propietario":true}`, p.Propietario)
	assert.JSONEq(t, `{"nombre":"","cedula":"","telefono":"","correo":""}`, p.Inquilino)
}

func TestBuildEntidadPayloadAlquilada(t *testing.T) {
	p, err := BuildEntidadPayload(internaldto.EntidadRequest{
		Clase:      "Casa",
		Referencia: "C-1",
		Condicion:  "alquilada",
		Inquilino:  models.Inquilino{Nombre: "Rosa", Telefono: "0412"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ALQUILADA", p.Condicion)
	assert.Equal(t, "inquilino", p.Representante)
	assert.Contains(t, p.Inquilino, `"Rosa"`)
}

func TestBuildEntidadPayloadReglas(t *testing.T) {
	_, err := BuildEntidadPayload(internaldto.EntidadRequest{Clase: "Casa", Referencia: "C-1", Condicion: "Alquilada"})
	assert.Equal(t, http.StatusBadRequest, statusDe(t, err))

	_, err = BuildEntidadPayload(internaldto.EntidadRequest{Clase: "Casa", Referencia: "C-1", Condicion: "Habitada", Representante: "Inquilino"})
	assert.Equal(t, http.StatusBadRequest, statusDe(t, err))

	_, err = BuildEntidadPayload(internaldto.EntidadRequest{Clase: "Casa", Referencia: "C-1", SaldoActual: "mucho"})
	assert.Equal(t, http.StatusBadRequest, statusDe(t, err))
}

func TestEntidadesEliminar(t *testing.T) {
	llamadas := 0
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		assert.Equal(t, http.MethodDelete, r.Method)
		body := leerCuerpo(t, r)
		assert.Equal(t, "delete", body["action"])
		assert.Equal(t, "vendida", body["motivoEliminacion"])
		_, _ = w.Write([]byte(`{"response":"Entidad eliminada","status":"success"}`))
	})
	svc := NewEntidadesService(c)

	_, err := svc.Eliminar(context.Background(), sesionPrueba, 3, "   ")
	assert.Equal(t, http.StatusBadRequest, statusDe(t, err))
	assert.Zero(t, llamadas)

	msg, err := svc.Eliminar(context.Background(), sesionPrueba, 3, "  vendida ")
	require.NoError(t, err)
	assert.Equal(t, "Entidad eliminada", msg)
	assert.Equal(t, 1, llamadas)
}

func TestEscrituraConStatusDeError(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"Referencia duplicada","status":"error"}`))
	})

	_, err := NewEntidadesService(c).Crear(context.Background(), sesionPrueba, internaldto.EntidadRequest{Clase: "Apto", Referencia: "A-1"})
	assert.Equal(t, http.StatusBadGateway, statusDe(t, err))
	assert.Equal(t, "Referencia duplicada", helpers.AsAppError(err, "").Message)
}

func TestBancosListar(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(envuelto(t, map[string]any{"id": 2, "nombre": "Banesco", "datos": `{"numeroCuenta":"0134","mondeda":"Bs"}`}))
	})

	lista, err := NewBancosService(c).Listar(context.Background(), sesionPrueba)
	require.NoError(t, err)
	require.Len(t, lista.Items, 1)
	assert.Equal(t, "0134", lista.Items[0].Datos.NumeroCuenta)
}

func TestBancosListarStatusError(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"@res":"{\"status\":\"fail\",\"response\":\"sin permisos\"}"}]}`))
	})

	_, err := NewBancosService(c).Listar(context.Background(), sesionPrueba)
	assert.Equal(t, http.StatusBadGateway, statusDe(t, err))
	assert.Equal(t, "sin permisos", helpers.AsAppError(err, "").Message)
}

func TestBancosEstadoCuenta(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bancos/cuenta/2", r.URL.Path)
		_, _ = w.Write(envuelto(t,
			map[string]any{"fecha": "15/01/2024", "concepto": "Cuota enero", "credito": "100.00", "saldo": "100.00"},
			map[string]any{"fecha": "01/03/2024", "concepto": "Pago agua", "debito": "40.00", "saldo": "60.00"},
			map[string]any{"fecha": "10/02/2024", "concepto": "Cuota febrero", "credito": "50.00", "saldo": "110.00"},
		))
	})
	svc := NewBancosService(c)

	ec, aviso, err := svc.EstadoCuenta(context.Background(), sesionPrueba, 2, internaldto.EstadoCuentaQuery{})
	require.NoError(t, err)
	assert.Empty(t, aviso)
	require.Equal(t, 3, ec.Total)
	assert.Equal(t, "01/03/2024", ec.Movimientos[0].Fecha)
	assert.Equal(t, "15/01/2024", ec.Movimientos[2].Fecha)
	assert.Equal(t, "150", ec.TotalCredito.String())
	assert.Equal(t, "40", ec.TotalDebito.String())

	ec, _, err = svc.EstadoCuenta(context.Background(), sesionPrueba, 2, internaldto.EstadoCuentaQuery{Q: "CUOTA", Columna: "credito", Asc: true})
	require.NoError(t, err)
	require.Len(t, ec.Movimientos, 2)
	assert.Equal(t, "Cuota febrero", ec.Movimientos[0].Concepto)
}

func TestBancosFormatoImpresion(t *testing.T) {
	respuestas := map[string]string{
		"/bancos/formato-impresion/1": `{"html":"<p>uno</p>"}`,
		"/bancos/formato-impresion/2": `"<p>dos</p>"`,
		"/bancos/formato-impresion/3": `<p>tres</p>`,
	}
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(respuestas[r.URL.Path]))
	})
	svc := NewBancosService(c)

	for id, want := range map[string]string{"1": "<p>uno</p>", "2": "<p>dos</p>", "3": "<p>tres</p>"} {
		html, err := svc.FormatoImpresion(context.Background(), sesionPrueba, id)
		require.NoError(t, err)
		assert.Equal(t, want, html)
	}
}

func TestBuildMovimientoBancario(t *testing.T) {
	mov, err := BuildMovimientoBancario(internaldto.MovimientoBancoRequest{
		IDBanco: 3, Tipo: "DB", FormaPago: "EFC", MontoBs: "1.500,00", Fecha: "2024-04-02",
	}, "7")
	require.NoError(t, err)
	assert.Equal(t, "debito", mov.Clase)
	assert.Equal(t, models.TipoEfectivo, mov.BancoDestino)
	assert.Empty(t, mov.BancoOrigen)
	assert.InDelta(t, 1500.0, mov.MontoBs, 0.001)
	assert.Equal(t, models.MonedaBs, mov.Moneda)

	mov, err = BuildMovimientoBancario(internaldto.MovimientoBancoRequest{
		IDBanco: 3, Tipo: "credito", FormaPago: "TRF", BancoAux: "0102", Referencia: "99", MontoBs: "20", Fecha: "2024-04-02",
	}, "7")
	require.NoError(t, err)
	assert.Equal(t, "credito", mov.Clase)
	assert.Equal(t, "0102", mov.BancoOrigen)
	assert.Empty(t, mov.BancoDestino)

	_, err = BuildMovimientoBancario(internaldto.MovimientoBancoRequest{IDBanco: 3, Tipo: "DB", FormaPago: "TRF", MontoBs: "20"}, "7")
	assert.Equal(t, http.StatusBadRequest, statusDe(t, err))
}

func TestProveedoresListar(t *testing.T) {
	cuerpos := map[string]string{
		"1": `{"response":"Proveedores","status":"success","body":[{"id":1,"personalidad":"J","emails":"a@x.com, b@x.com","telefonos":[]}]}`,
		"2": `{"response":"Proveedores no encontrados ","status":"success","body":""}`,
		"3": `{"response":"ok","status":"success","body":{"id":1}}`,
	}
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(cuerpos[r.URL.Query().Get("page")]))
	})
	svc := NewProveedoresService(c)

	pagina, aviso, err := svc.Listar(context.Background(), sesionPrueba, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, aviso)
	require.Len(t, pagina.Items, 1)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, pagina.Items[0].Emails)
	assert.Equal(t, []string{models.NoAplica}, pagina.Items[0].Telefonos)

	pagina, aviso, err = svc.Listar(context.Background(), sesionPrueba, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, pagina.Items)
	assert.Equal(t, "Información: Proveedores no encontrados", aviso)

	_, aviso, err = svc.Listar(context.Background(), sesionPrueba, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, MensajeFormatoProveedor, aviso)
}

func TestProveedoresEliminarSinMotivo(t *testing.T) {
	llamadas := 0
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/proveedores/4", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, body)
		_, _ = w.Write([]byte(`{"response":"Proveedor eliminado","status":"success"}`))
	})

	msg, err := NewProveedoresService(c).Eliminar(context.Background(), sesionPrueba, 4)
	require.NoError(t, err)
	assert.Equal(t, "Proveedor eliminado", msg)
	assert.Equal(t, 1, llamadas)
}

func TestBuildProveedorPayload(t *testing.T) {
	inactivo := false
	p := BuildProveedorPayload(internaldto.ProveedorRequest{
		Personalidad: "n",
		IDFiscal:     "V-1",
		RazonSocial:  "Plomería",
		Emails:       []string{"a@x.com", "", "b@x.com"},
		Telefonos:    []string{models.NoAplica},
		Comentarios:  "  ",
		Activo:       &inactivo,
	})
	assert.Equal(t, "N", p.Personalidad)
	assert.Equal(t, "a@x.com, b@x.com", p.Emails)
	assert.Equal(t, "", p.Telefonos)
	assert.Nil(t, p.Comentarios)
	assert.Nil(t, p.OtrosDatos)
	assert.Equal(t, models.ProveedorInactivo, p.Activo)
}
