package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MohamedSultan7/davinci-bakers/api/routes"
	"github.com/MohamedSultan7/davinci-bakers/internal/address"
	"github.com/MohamedSultan7/davinci-bakers/internal/cart"
	"github.com/MohamedSultan7/davinci-bakers/internal/catalog"
	"github.com/MohamedSultan7/davinci-bakers/internal/moq"
	"github.com/MohamedSultan7/davinci-bakers/internal/orders"
	"github.com/MohamedSultan7/davinci-bakers/internal/simulation"
	"github.com/MohamedSultan7/davinci-bakers/internal/users"
	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/MohamedSultan7/davinci-bakers/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	seedUsers, err := users.SeedUsers(cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to seed accounts", err)
		os.Exit(1)
	}

	productRepo := catalog.NewRepository(catalog.SeedProducts(), catalog.SeedCategories())
	policy := moq.NewPolicy(moq.SeedRules())

	userService := users.NewService(users.NewRepository(seedUsers), cfg, logg)
	catalogService := catalog.NewService(productRepo, logg)
	cartService := cart.NewService(cart.NewRepository(), productRepo, policy, logg)
	addressService := address.NewService(address.SeedAddresses())
	orderService := orders.NewService(
		orders.NewRepository(orders.SeedOrders(users.DemoUserID)),
		cartService,
		addressService,
		logg,
		nil,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(routes.Deps{
		Config:      cfg,
		Logger:      logg,
		Registry:    registry,
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
		Injector:    simulation.NewInjector(cfg.Simulation, nil),
		Users:       userService,
		Catalog:     catalogService,
		Cart:        cartService,
		Orders:      orderService,
		Addresses:   addressService,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		ctx := logg.WithField(context.Background(), "port", cfg.App.Port)
		logg.Info(ctx, "api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "server stopped", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(shutdownCtx, "graceful shutdown failed", err)
		os.Exit(1)
	}
	logg.Info(context.Background(), "api stopped")
}
