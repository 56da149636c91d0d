package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsorted/shiftsorted-backend/api/controllers"
	"github.com/shiftsorted/shiftsorted-backend/api/middleware"
	"github.com/shiftsorted/shiftsorted-backend/internal/booking"
	"github.com/shiftsorted/shiftsorted-backend/internal/companies"
	"github.com/shiftsorted/shiftsorted-backend/internal/drafts"
	"github.com/shiftsorted/shiftsorted-backend/internal/movers"
	"github.com/shiftsorted/shiftsorted-backend/internal/quotes"
	"github.com/shiftsorted/shiftsorted-backend/internal/subscriptions"
	"github.com/shiftsorted/shiftsorted-backend/pkg/auth/session"
	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          controllers.Pinger
	SessionChecker session.AccessSessionChecker

	Quotes        quotes.Service
	Companies     companies.Service
	Bookings      booking.Service
	Movers        movers.Service
	Subscriptions subscriptions.Service
	Drafts        *drafts.Store

	Metrics http.Handler
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.Catalog())
		r.Post("/quotes/search", controllers.QuoteSearch(deps.Quotes, logg))

		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", controllers.DraftSave(deps.Drafts, logg))
			r.Get("/{draftId}", controllers.DraftGet(deps.Drafts, logg))
			r.Put("/{draftId}", controllers.DraftSave(deps.Drafts, logg))
			r.Delete("/{draftId}", controllers.DraftDelete(deps.Drafts, logg))
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", controllers.BookingCreate(deps.Bookings, logg))
			r.Get("/{transactionRef}", controllers.BookingByRef(deps.Bookings, logg))
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", controllers.CompanyList(deps.Companies, logg))
			r.Get("/{companyId}", controllers.CompanyDetail(deps.Companies, logg))
		})

		r.Route("/mover", func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", controllers.MoverRegister(deps.Movers, logg))
				r.Post("/login", controllers.MoverLogin(deps.Movers, logg))
				r.Post("/refresh", controllers.MoverRefresh(deps.Movers, logg))
				r.Post("/logout", controllers.MoverLogout(deps.Movers, logg))
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

				r.Route("/subscription", func(r chi.Router) {
					r.Get("/", controllers.MoverSubscriptionFetch(deps.Subscriptions, logg))
					r.Post("/", controllers.MoverSubscriptionStart(deps.Subscriptions, logg))
					r.Delete("/", controllers.MoverSubscriptionCancel(deps.Subscriptions, logg))
				})
				r.Get("/bookings", controllers.MoverBookings(deps.Bookings, logg))
				r.Put("/rates", controllers.MoverUpdateRates(deps.Companies, logg))
			})
		})
	})

	return r
}
