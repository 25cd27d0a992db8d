package main

import (
	"bagpackers/config"
	"bagpackers/di"
	"bagpackers/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
