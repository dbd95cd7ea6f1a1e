package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App carries the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring assembles middleware, handlers and routes into the application
// router.
func Wiring(handler *adaptor.Handler, repo *repository.Repository, config *utils.Config, log *zap.Logger) *App {
	r := chi.NewRouter()

	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS())

	protect := middleware.Protect(repo.User, config, log)
	admin := middleware.Admin(log)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]string{"service": config.App.Name})
	})

	// Uploaded files are served as-is under /uploads.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api", func(api chi.Router) {
		api.Mount("/users", UserRoutes(handler.User, protect, admin))
		api.Mount("/packages", PackageRoutes(handler.Package, protect, admin))
		api.Mount("/package-details", PackageDetailRoutes(handler.PackageDetail, protect, admin))
		api.Mount("/categories", CategoryRoutes(handler.Category))
		api.Mount("/bookings", BookingRoutes(handler.Booking, protect, admin))
		api.Mount("/deals", DealRoutes(handler.Deal, protect, admin))
		api.Mount("/rewards", RewardRoutes(handler.Reward, protect, admin))
		api.Mount("/reviews", ReviewRoutes(handler.Review, protect))
		api.Mount("/hotels", HotelRoutes(handler.Hotel, protect, admin))
		api.Mount("/tourist-places", TouristPlaceRoutes(handler.TouristPlace))
		api.Mount("/states", StateRoutes(handler.State, protect, admin))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return &App{Router: r}
}
