package routers

import (
	"github.com/condominios-online/condominios_mid/controllers/errorhandler"
	internalcontrollers "github.com/condominios-online/condominios_mid/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/v1/auth/login", &internalcontrollers.AuthController{}, "post:Login")
	beego.Router("/v1/auth/select-client", &internalcontrollers.AuthController{}, "post:SelectClient")
	beego.Router("/v1/auth/logout", &internalcontrollers.AuthController{}, "post:Logout")

	beego.Router("/v1/entidades", &internalcontrollers.EntidadesController{}, "get:GetAll;post:Post")
	beego.Router("/v1/entidades/:id", &internalcontrollers.EntidadesController{}, "get:GetByID;put:Put;delete:Delete")

	beego.Router("/v1/bancos", &internalcontrollers.BancosController{}, "get:GetAll;post:Post")
	beego.Router("/v1/bancos/auxiliares", &internalcontrollers.BancosController{}, "get:GetAuxiliares")
	beego.Router("/v1/bancos/movimientos", &internalcontrollers.BancosController{}, "post:PostMovimiento")
	beego.Router("/v1/bancos/formato-impresion/:id", &internalcontrollers.BancosController{}, "get:GetFormatoImpresion")
	beego.Router("/v1/bancos/:id/estado-cuenta", &internalcontrollers.BancosController{}, "get:GetEstadoCuenta")
	beego.Router("/v1/bancos/:id", &internalcontrollers.BancosController{}, "put:Put")

	beego.Router("/v1/proveedores", &internalcontrollers.ProveedoresController{}, "get:GetAll;post:Post")
	beego.Router("/v1/proveedores/:id", &internalcontrollers.ProveedoresController{}, "put:Put;delete:Delete")

	beego.Router("/v1/transacciones/cobranzas", &internalcontrollers.TransaccionesController{}, "post:PostCobranza")
	beego.Router("/v1/transacciones/notas", &internalcontrollers.TransaccionesController{}, "post:PostNota")
	beego.Router("/v1/transacciones/operaciones", &internalcontrollers.TransaccionesController{}, "post:PostOperacion")

	beego.Router("/v1/tasas/dolar/:fecha", &internalcontrollers.TasasController{}, "get:GetDolar")
	beego.Router("/v1/tasas/equivalencia", &internalcontrollers.TasasController{}, "get:GetEquivalencia")

	beego.Router("/v1/gastos/distribucion", &internalcontrollers.GastosController{}, "post:PostDistribucion")

	beego.Handler("/metrics", promhttp.Handler())
}
