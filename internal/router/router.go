package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campus-eats/internal/config"
	"campus-eats/internal/handler"
	"campus-eats/internal/middleware"
	"campus-eats/internal/model"
)

type Handlers struct {
	Student *handler.AccountHandler
	Vendor  *handler.AccountHandler
	Menu    *handler.MenuHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	requireStudent := authMiddleware.Require(model.RoleStudent)
	requireVendor := authMiddleware.Require(model.RoleVendor)

	r.Route("/api/Student", func(api chi.Router) {
		api.Post("/register", handlers.Student.Register)
		api.Post("/login", handlers.Student.Login)
		api.With(requireStudent).Get("/is-auth", handlers.Student.IsAuth)
		api.With(requireStudent).Get("/logout", handlers.Student.Logout)
		api.Get("/vendors-with-menus", handlers.Menu.ListVendors)
	})

	r.Route("/api/Vendor", func(api chi.Router) {
		api.Post("/register", handlers.Vendor.Register)
		api.Post("/login", handlers.Vendor.Login)
		api.With(requireVendor).Get("/is-auth", handlers.Vendor.IsAuth)
		api.With(requireVendor).Get("/logout", handlers.Vendor.Logout)

		// Public menu view for students; the rest is vendor-only.
		api.Get("/menu/{email}", handlers.Menu.GetByEmail)
		api.With(requireVendor).Post("/menu", handlers.Menu.Save)
		api.With(requireVendor).Get("/menu", handlers.Menu.Get)
		api.With(requireVendor).Delete("/menu", handlers.Menu.Delete)
	})

	return r
}
