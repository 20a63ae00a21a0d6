package middlewares

import (
	"sync"

	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
)

var corsOnce sync.Once

// CORSOptions arma la política CORS. Con "*" entre los orígenes no se permiten
// credenciales: los navegadores rechazan esa combinación.
func CORSOptions(origins []string) *cors.Options {
	comodin := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			comodin = true
		}
	}
	opts := &cors.Options{
		AllowOrigins:     origins, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "X-Correlation-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !comodin,
	}
	if comodin {
		opts.AllowOrigins = nil
		opts.AllowAllOrigins = true
	}
	return opts
}

// UseCORS registra el filtro CORS una sola vez.
func UseCORS(origins []string) {
	corsOnce.Do(func() {
		beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(CORSOptions(origins)))
	})
}
