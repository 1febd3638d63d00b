package rest

import (
	"context"
	"fmt"
	"net/http"

	"catalog-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers объединяет все обработчики сервиса для сборки роутера.
type Handlers struct {
	Catalog *CatalogHandler
	Admin   *AdminHandler
	Upload  *UploadHandler
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer создает и настраивает главный роутер и HTTP-сервер.
// uploadsDir раздается как статика по uploadsPublicPath.
func NewServer(restPort string, handlers Handlers, auth *AuthMiddleware, uploadsDir, uploadsPublicPath string, baseLogger port.LoggerPort) *Server {
	r := chi.NewRouter()

	// Стандартные middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	// Админка и веб-клиент ходят с других origin'ов
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", adminTokenHeader},
		AllowCredentials: false,
		MaxAge:           300, // 5 минут
	}))

	r.Route("/api", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Get("/ping", handlers.Catalog.Ping)
		r.Get("/listings", handlers.Catalog.SearchListings)
		r.Get("/listings/{listingID}", handlers.Catalog.GetListing)
		r.Post("/upload", handlers.Upload.UploadPhoto)

		// --- Админские маршруты ---
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Post("/admin/listings", handlers.Admin.CreateListing)
			r.Put("/admin/listings/{listingID}", handlers.Admin.UpdateListing)
			r.Delete("/admin/listings/{listingID}", handlers.Admin.DeleteListing)
			r.Get("/admin/my-listings", handlers.Admin.MyListings)
		})
	})

	// Загруженные фото раздаются напрямую с диска
	fileServer := http.StripPrefix(uploadsPublicPath+"/", http.FileServer(http.Dir(uploadsDir)))
	r.Get(uploadsPublicPath+"/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + restPort,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	// ListenAndServe будет работать, пока не получит ошибку или команду Shutdown
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
