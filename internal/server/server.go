package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/application"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/auth"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/config"
	mongodoc "github.com/declared-as-ala/pricewatch-admin-api/internal/infrastructure/mongo"
	adminhttp "github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/admin"
	"github.com/declared-as-ala/pricewatch-admin-api/internal/interfaces/http/common"
)

// Server is the composition root: it wires repositories, application
// services, the identity gate and the HTTP router, and owns the
// process lifecycle.
type Server struct {
	log                *logrus.Logger
	client             *mongo.Client
	database           *mongo.Database
	gate               *auth.Gate
	userService        application.UserService
	productService     application.ProductService
	storeService       application.StoreService
	reclamationService application.ReclamationService
	dashboardService   application.DashboardService
	addr               string
	allowedOrigins     []string
	requestTimeout     time.Duration
	unauthorizedPath   string
}

// New assembles a Server from configuration and a connected Mongo
// client.
func New(cfg config.Config, client *mongo.Client, log *logrus.Logger) *Server {
	database := client.Database(cfg.MongoDatabase)

	userRepo := mongodoc.NewUserRepository(database, cfg.UserCollection)
	reclamationRepo := mongodoc.NewReclamationRepository(database, cfg.ReclamationCollection)
	productRepo := mongodoc.NewProductRepository(database, cfg.ProductCollection)
	storeRepo := mongodoc.NewStoreRepository(database, cfg.StoreCollection)
	adminRepo := mongodoc.NewAdminRepository(database, cfg.AdminCollection)

	gate := auth.NewGate(adminRepo, auth.Config{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	})

	return &Server{
		log:                log,
		client:             client,
		database:           database,
		gate:               gate,
		userService:        application.NewUserService(userRepo, reclamationRepo),
		productService:     application.NewProductService(productRepo),
		storeService:       application.NewStoreService(storeRepo),
		reclamationService: application.NewReclamationService(userRepo, reclamationRepo),
		dashboardService:   application.NewDashboardService(userRepo, productRepo, storeRepo, reclamationRepo),
		addr:               cfg.Addr,
		allowedOrigins:     append([]string(nil), cfg.AllowedOrigins...),
		requestTimeout:     cfg.RequestTimeout,
		unauthorizedPath:   cfg.UnauthorizedPath,
	}
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.loginHandler())
		r.Post("/logout", s.logoutHandler())
		r.Get("/session", s.sessionHandler())
	})

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:         s.log,
		Users:          s.userService,
		Products:       s.productService,
		Stores:         s.storeService,
		Reclamations:   s.reclamationService,
		Dashboard:      s.dashboardService,
		RequestTimeout: s.requestTimeout,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(common.RequireAdmin(s.log, s.gate, s.unauthorizedPath))
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.addr).Info("HTTP server listening")
		errChan <- httpServer.ListenAndServe()
	}()

	s.waitForShutdown(httpServer, errChan)
	return nil
}

// requestLogger logs each request with the fields the dashboard team
// greps for.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("request handled")
	})
}

func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports Mongo reachability only, for probes.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			common.WriteJSON(s.log, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		common.WriteJSON(s.log, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.log.WithError(err).Error("MongoDB disconnect failed")
	}
}

// waitForShutdown blocks on either a server error or an OS signal and
// drains connections before disconnecting Mongo.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Fatal("server stopped unexpectedly")
		}
	case sig := <-sigChan:
		s.log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.log.WithError(err).Error("graceful shutdown failed")
		}
	}

	s.shutdown(context.Background())
}
