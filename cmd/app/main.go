package main

import (
	"grandromeo/config"
	"grandromeo/di"
	"grandromeo/shared/logger"
)

// @title Grand Romeo Hotel API
// @version 1.0
// @description Hotel management backend: reservations, rooms, guests, staff, payments and dashboard.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
