package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	"github.com/chokun100/coffeeshop/internal/jaeger"
	"github.com/chokun100/coffeeshop/internal/service/services/menusvc"
	"github.com/chokun100/coffeeshop/internal/service/services/ordersvc"
	"github.com/chokun100/coffeeshop/internal/service/services/settingssvc"
	httptransport "github.com/chokun100/coffeeshop/internal/transport/http"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	menuSvc        *menusvc.MenuService
	settingsSvc    *settingssvc.SettingsService
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	tracerProvider *sdktrace.TracerProvider
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	tracerProvider := jaeger.MustNewTracerProvider()
	postgresClient := postgres.MustNewClient()

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(postgresClient),
		ordersvc.WithStrictStatusFlow(viper.GetBool("orders.strict_status_flow")),
	)
	menuSvc := menusvc.MustNewMenuService(
		menusvc.WithPostgresClient(postgresClient),
	)
	settingsSvc := settingssvc.MustNewSettingsService(
		settingssvc.WithPostgresClient(postgresClient),
	)

	transport := httptransport.NewHTTPTransport(orderSvc, menuSvc, settingsSvc)
	transport.RegisterRoutes()

	return &App{
		orderSvc:       orderSvc,
		menuSvc:        menuSvc,
		settingsSvc:    settingsSvc,
		transport:      transport,
		postgresClient: postgresClient,
		tracerProvider: tracerProvider,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.tracerProvider.Shutdown(ctx); err != nil {
		slog.Error("Tracer provider shutdown error", "error", err)
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	slog.Info("Application shutdown complete")
}
