package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-eats/internal/config"
	"campus-eats/internal/database"
	"campus-eats/internal/handler"
	"campus-eats/internal/middleware"
	"campus-eats/internal/model"
	"campus-eats/internal/repository"
	"campus-eats/internal/router"
	"campus-eats/internal/service"
	"campus-eats/internal/token"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	studentRepo := repository.NewStudentRepository(pool)
	vendorRepo := repository.NewVendorRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	slog.Info("database ready")

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	authMiddleware := middleware.NewAuthMiddleware(issuer)
	cookies := handler.CookieOptions{TTL: cfg.SessionTTL, Secure: cfg.Production()}

	studentService := service.NewAccountService(model.RoleStudent, studentRepo, issuer)
	vendorService := service.NewAccountService(model.RoleVendor, vendorRepo, issuer)
	menuService := service.NewMenuService(menuRepo, vendorRepo)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Student: handler.NewAccountHandler(studentService, cookies),
		Vendor:  handler.NewAccountHandler(vendorService, cookies),
		Menu:    handler.NewMenuHandler(menuService),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() {
				db.Close()
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
