package main

import (
	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/joho/godotenv"

	"github.com/condominios-online/condominios_mid/controllers/errorhandler"
	"github.com/condominios-online/condominios_mid/internal/middlewares"
	_ "github.com/condominios-online/condominios_mid/routers"
	rootservices "github.com/condominios-online/condominios_mid/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logs.Debug("sin archivo .env, se usan variables de entorno")
	}
	cfg := rootservices.GetConfig()

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	beego.BConfig.CopyRequestBody = true
	beego.BConfig.RecoverPanic = true
	beego.BConfig.RecoverFunc = errorhandler.HandlePanic

	middlewares.UseCORS(cfg.AllowOrigins)
	middlewares.UseAuth()

	if beego.BConfig.RunMode == "dev" {
		beego.BConfig.WebConfig.DirectoryIndex = true
		beego.BConfig.WebConfig.StaticDir["/swagger"] = "swagger"
	}
	logs.Info("%s escuchando en :%d (backend %s)", cfg.AppName, cfg.HTTPPort, cfg.CondominiosBaseURL)
	beego.Run()
}
