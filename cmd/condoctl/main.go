// Command condoctl ayuda a operar el MID: desenvuelve respuestas capturadas del
// backend de condominios y consulta la tasa del dólar con la configuración del servicio.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
