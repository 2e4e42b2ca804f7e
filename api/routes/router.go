package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MohamedSultan7/davinci-bakers/api/controllers"
	"github.com/MohamedSultan7/davinci-bakers/api/middleware"
	addresssvc "github.com/MohamedSultan7/davinci-bakers/internal/address"
	cartsvc "github.com/MohamedSultan7/davinci-bakers/internal/cart"
	catalogsvc "github.com/MohamedSultan7/davinci-bakers/internal/catalog"
	ordersvc "github.com/MohamedSultan7/davinci-bakers/internal/orders"
	"github.com/MohamedSultan7/davinci-bakers/internal/simulation"
	usersvc "github.com/MohamedSultan7/davinci-bakers/internal/users"
	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/MohamedSultan7/davinci-bakers/pkg/metrics"
)

// Deps carries everything the router mounts.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	Injector    *simulation.Injector
	Sleep       func(time.Duration)

	Users     usersvc.Service
	Catalog   catalogsvc.Service
	Cart      cartsvc.Service
	Orders    ordersvc.Service
	Addresses addresssvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Probes and metrics stay fast; everything under the API surface
		// carries the simulated latency and fault profile.
		r.Use(middleware.Simulation(deps.Injector, logg, deps.Sleep))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(deps.Users, logg))
			r.Post("/login", controllers.AuthLogin(deps.Users, logg))
			r.Post("/otp/send", controllers.AuthSendOtp(deps.Users, logg))
			r.Post("/otp/verify", controllers.AuthVerifyOtp(deps.Users, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.Users, logg))
			r.Post("/logout", controllers.AuthLogout(logg))
			r.With(middleware.Auth(cfg.JWT, logg)).Get("/me", controllers.AuthMe(deps.Users, logg))
		})

		r.Get("/products", controllers.ProductsList(deps.Catalog, logg))
		r.Get("/products/{productID}", controllers.ProductGet(deps.Catalog, logg))
		r.Get("/categories", controllers.CategoriesList(deps.Catalog, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(deps.Cart, logg))
				r.Post("/items", controllers.CartUpsert(deps.Cart, logg))
				r.Delete("/items/{productID}", controllers.CartRemoveItem(deps.Cart, logg))
				r.Delete("/", controllers.CartClear(deps.Cart, logg))
				r.Post("/validate", controllers.CartValidate(deps.Cart, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.OrdersCreate(deps.Orders, logg))
				r.Get("/", controllers.OrdersList(deps.Orders, logg))
				r.Get("/{orderID}", controllers.OrderGet(deps.Orders, logg))
				r.Post("/{orderID}/reorder", controllers.OrderReorder(deps.Orders, logg))
			})

			r.Get("/addresses", controllers.AddressesList(deps.Addresses, logg))
			r.Get("/addresses/{addressID}", controllers.AddressGet(deps.Addresses, logg))

			r.Get("/payment-methods", controllers.PaymentMethodsList(logg))
			r.Route("/payments", func(r chi.Router) {
				r.Post("/intent", controllers.PaymentIntentCreate(logg))
				r.Post("/confirm", controllers.PaymentIntentConfirm(logg))
			})
		})
	})

	return r
}
