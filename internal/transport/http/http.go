package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/chokun100/coffeeshop/internal/service/models/menu"
	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
	createorder "github.com/chokun100/coffeeshop/internal/transport/http/create_order"
	getmenu "github.com/chokun100/coffeeshop/internal/transport/http/get_menu"
	getorder "github.com/chokun100/coffeeshop/internal/transport/http/get_order"
	getreceipt "github.com/chokun100/coffeeshop/internal/transport/http/get_receipt"
	listorders "github.com/chokun100/coffeeshop/internal/transport/http/list_orders"
	"github.com/chokun100/coffeeshop/internal/transport/http/seed"
	shopsettingshandler "github.com/chokun100/coffeeshop/internal/transport/http/shop_settings"
	updatestatus "github.com/chokun100/coffeeshop/internal/transport/http/update_status"
	"github.com/chokun100/coffeeshop/pkg/http/middleware/trace"
	"github.com/chokun100/coffeeshop/pkg/logger"
)

type orderService interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
	GetOrderByID(ctx context.Context, id int64) (order.Order, error)
	ListOrders(ctx context.Context, query order.QueryOrdersModel) ([]order.Order, error)
	UpdateStatus(ctx context.Context, id int64, status orderstatus.Status) (order.Order, error)
}

type menuService interface {
	GetMenu(ctx context.Context) ([]menu.Category, error)
	NeedsSeeding(ctx context.Context) (bool, error)
	Seed(ctx context.Context) error
}

type settingsService interface {
	Get(ctx context.Context) (shopsettings.Settings, error)
	Update(ctx context.Context, settings shopsettings.Settings) (shopsettings.Settings, error)
}

type HTTPTransport struct {
	server      *http.Server
	router      *chi.Mux
	orderSvc    orderService
	menuSvc     menuService
	settingsSvc settingsService
}

func NewHTTPTransport(orderSvc orderService, menuSvc menuService, settingsSvc settingsService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:      server,
		router:      router,
		orderSvc:    orderSvc,
		menuSvc:     menuSvc,
		settingsSvc: settingsSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api/shop", func(r chi.Router) {
		r.Get("/menu", h.getMenu)
		r.Post("/orders", h.createOrder)
		r.Get("/orders", h.listOrders)
		r.Get("/orders/{id}", h.getOrder)
		r.Patch("/orders/{id}/status", h.updateStatus)
		r.Get("/orders/{id}/receipt", h.getReceipt)
		r.Get("/settings", h.getSettings)
		r.Put("/settings", h.updateSettings)
		r.Post("/seed", h.seed)
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateStatus(w http.ResponseWriter, r *http.Request) {
	updatestatus.UpdateStatus(w, r, h.orderSvc)
}

func (h *HTTPTransport) getReceipt(w http.ResponseWriter, r *http.Request) {
	getreceipt.GetReceipt(w, r, h.orderSvc, h.settingsSvc)
}

func (h *HTTPTransport) getMenu(w http.ResponseWriter, r *http.Request) {
	getmenu.GetMenu(w, r, h.menuSvc)
}

func (h *HTTPTransport) getSettings(w http.ResponseWriter, r *http.Request) {
	shopsettingshandler.GetSettings(w, r, h.settingsSvc)
}

func (h *HTTPTransport) updateSettings(w http.ResponseWriter, r *http.Request) {
	shopsettingshandler.UpdateSettings(w, r, h.settingsSvc)
}

func (h *HTTPTransport) seed(w http.ResponseWriter, r *http.Request) {
	seed.Seed(w, r, h.menuSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
