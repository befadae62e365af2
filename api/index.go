package handler

import (
	"cargobike/config"
	"cargobike/di"
	"cargobike/shared/logger"
	"cargobike/shared/timezone"
	transport "cargobike/transport/http"
	"net/http"
	"sync"
)

var (
	once   sync.Once
	server *transport.HTTP
)

// Handler serves the API from a serverless function. Form sessions live in
// memory, so the server is built once per warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
