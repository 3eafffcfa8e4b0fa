package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/supermercado-api/internal/console"
	"github.com/jhoicas/supermercado-api/internal/console/api"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "warn", // la consola escribe su propia salida; el log solo avisa fallos
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.NewHTTPClient(cfg.Console.APIBaseURL)
	app := console.NewApp(client, cfg.Billing.TaxRate, cfg.Console.PageSize, os.Stdout)

	if err := app.Run(ctx, os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("consola finalizada con error")
	}
}
