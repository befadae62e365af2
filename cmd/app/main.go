package main

import (
	"cargobike/config"
	"cargobike/di"
	"cargobike/shared/logger"
	"cargobike/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
