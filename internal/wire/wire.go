// internal/wire/wire.go
package wire

import (
	"net/http"

	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/response"
	"moviehub/internal/usecase"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	images := response.Images{BaseURL: config.Image.BaseURL}
	handler := adaptor.NewHandler(service, images, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// page routes share the upstream quota
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.Limiter, logger))

		wireMovie(r, handler.Movie)
		wireSearch(r, handler.Search)
		wireCertification(r, handler.Certification)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Page not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	return r
}
