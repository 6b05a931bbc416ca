package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/anchanpratham/tiffinontime/internal/app"
	"github.com/anchanpratham/tiffinontime/internal/config"
	"github.com/anchanpratham/tiffinontime/internal/gateway"
	"github.com/anchanpratham/tiffinontime/internal/modules/auth"
	"github.com/anchanpratham/tiffinontime/internal/modules/catalog"
	"github.com/anchanpratham/tiffinontime/internal/modules/order"
	"github.com/anchanpratham/tiffinontime/internal/ui"
)

func main() {
	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gw := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	authService := auth.NewService(gw)
	catalogService := catalog.NewService(gw)
	orderService := order.NewService(gw)

	controller := app.NewController(catalogService, orderService, gw, cfg.AdminPollInterval)
	handler := ui.NewHandler(controller, authService, catalogService)

	r := ui.NewRouter(handler)

	log.Printf("starting ui addr=:%s gateway=%s poll_interval=%s",
		cfg.AppPort, cfg.APIBaseURL, cfg.AdminPollInterval)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
