package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/config"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/handlers"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/routes"
)

func main() {
	cfg := config.Load()

	// fail fast when the database is unreachable
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.ErrorHandler
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
