package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smartserve/internal/config"
	"smartserve/internal/database"
	"smartserve/internal/fixture"
	"smartserve/internal/middleware"
	"smartserve/internal/modules/admin"
	"smartserve/internal/modules/auth"
	"smartserve/internal/modules/booking"
	"smartserve/internal/modules/catalog"
	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/repository"
	"smartserve/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.AppEnv == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)
	sessions := newSessionStore(cfg)
	authn := middleware.NewAuthenticator(j, sessions)

	cookies := cookieOptions(cfg)

	var (
		authService    *auth.Service
		catalogService *catalog.Service
		bookingService *booking.Service
		adminService   *admin.Service
	)

	useFixture := cfg.DataSource == config.DataSourceFixture
	if !useFixture {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("database unreachable, falling back to fixture data")
			useFixture = true
		} else {
			userRepo := repository.NewUserRepository(db)
			adminRepo := repository.NewAdminRepository(db)
			serviceRepo := repository.NewServiceRepository(db)
			professionalRepo := repository.NewProfessionalRepository(db)
			bookingRepo := repository.NewBookingRepository(db)
			reviewRepo := repository.NewReviewRepository(db)
			statsRepo := repository.NewStatsRepository(db)

			authService = auth.NewService(userRepo, bookingRepo, j, sessions)
			catalogService = catalog.NewService(serviceRepo, professionalRepo, reviewRepo, bookingRepo)
			bookingService = booking.NewService(bookingRepo, serviceRepo)
			adminService = admin.NewService(adminRepo, statsRepo, bookingRepo, professionalRepo, serviceRepo, userRepo, j, sessions)
		}
	}
	if useFixture {
		store := fixture.NewStore()
		authService = auth.NewService(store.Users(), store.Bookings(), j, sessions)
		catalogService = catalog.NewService(store.Services(), store.Professionals(), store.Reviews(), store.Bookings())
		bookingService = booking.NewService(store.Bookings(), store.Services())
		adminService = admin.NewService(store.Admins(), store.Stats(), store.Bookings(), store.Professionals(), store.Services(), store.Users(), j, sessions)
		log.Info().Msg("serving from in-memory fixture data")
	}

	authHandler := auth.NewHandler(authService, authn, cookies)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	adminHandler := admin.NewHandler(adminService, authn, admin.CookieOptions(cookies))

	middleware.RegisterMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterRoutes(api)

		user := api.Group("/")
		user.Use(authn.RequireUser())
		{
			authHandler.RegisterProtectedRoutes(user)
			bookingHandler.RegisterRoutes(user)
		}

		adminGroup := api.Group("/admin")
		{
			adminHandler.RegisterPublicRoutes(adminGroup)

			protected := adminGroup.Group("/")
			protected.Use(authn.RequireAdmin())
			{
				adminHandler.RegisterProtectedRoutes(protected)
			}
		}
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerPages(r, cfg.StaticDir)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		store := session.NewMemoryStore()
		go func() {
			for range time.Tick(10 * time.Minute) {
				store.Sweep()
			}
		}()
		return store
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
	return session.NewRedisStore(client)
}

func cookieOptions(cfg *config.Config) auth.CookieOptions {
	sameSite := http.SameSiteLaxMode
	switch strings.ToLower(cfg.CookieSameSite) {
	case "strict":
		sameSite = http.SameSiteStrictMode
	case "none":
		sameSite = http.SameSiteNoneMode
	}
	return auth.CookieOptions{
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		Secure:   cfg.CookieSecure,
		SameSite: sameSite,
	}
}

// registerPages serves the frontend when a static directory is present. The
// server still runs API-only without one.
func registerPages(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn().Str("dir", dir).Msg("static directory not found, serving API only")
		return
	}

	r.Static("/static", filepath.Join(dir, "static"))

	pages := map[string]string{
		"/":                     "index.html",
		"/services":             "services.html",
		"/login":                "login.html",
		"/register":             "register.html",
		"/dashboard":            "dashboard.html",
		"/booking":              "booking.html",
		"/booking-history":      "booking-history.html",
		"/profile":              "profile.html",
		"/admin-login.html":     "admin-login.html",
		"/admin-dashboard.html": "admin-dashboard.html",
	}
	for route, file := range pages {
		r.GET(route, func(file string) gin.HandlerFunc {
			return func(c *gin.Context) {
				c.File(filepath.Join(dir, file))
			}
		}(file))
	}
}
