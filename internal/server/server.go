// Package server wires configuration, storage, services, and the HTTP
// stack together and runs the listener.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/bistro-boss-server/app/controllers"
	"github.com/shashiranjanraj/bistro-boss-server/app/repositories"
	"github.com/shashiranjanraj/bistro-boss-server/app/routes"
	"github.com/shashiranjanraj/bistro-boss-server/app/services"
	"github.com/shashiranjanraj/bistro-boss-server/config"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/cache"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/database"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/logger"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/metrics"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/middleware"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/reqid"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/router"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/stripe"
)

const shutdownTimeout = 10 * time.Second

// Run boots the application and blocks until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer db.Disconnect()

	// Redis is an accelerator, not a dependency; run without it if down.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	var logSink *logger.MongoHandler
	if config.LogToMongo() {
		logSink = logger.NewMongoHandler(db.DB, "logs", slog.LevelInfo)
		logger.SetHandler(logger.L.Handler(), logSink)
		defer logSink.Close()
	}

	r := NewRouter(db)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	return srv.Shutdown(shutdownCtx)
}

// RouteTable returns the registered routes without touching storage, for
// commands that only inspect the table. The handlers are never invoked.
func RouteTable() []router.RouteInfo {
	r := router.New()
	routes.Register(r, routes.Deps{
		Auth:      &controllers.AuthController{},
		Users:     &controllers.UserController{},
		Menu:      &controllers.MenuController{},
		Reviews:   &controllers.ReviewController{},
		Carts:     &controllers.CartController{},
		Payments:  &controllers.PaymentController{},
		Stats:     &controllers.StatsController{},
		AdminOnly: middleware.Admin(nil),
	})
	return r.Routes()
}

// NewRouter assembles the full middleware stack and route table. Split out
// from Run so commands that only need the route table can build it too.
func NewRouter(db *database.Mongo) *router.Router {
	users := repositories.NewUserRepository(db.DB)
	menu := repositories.NewMenuRepository(db.DB)
	reviews := repositories.NewReviewRepository(db.DB)
	carts := repositories.NewCartRepository(db.DB)
	payments := repositories.NewPaymentRepository(db.DB)

	intents := stripe.NewClient(config.StripeSecretKey())

	authSvc := services.NewAuthService()
	userSvc := services.NewUserService(users)
	menuSvc := services.NewMenuService(menu)
	reviewSvc := services.NewReviewService(reviews)
	cartSvc := services.NewCartService(carts)
	paymentSvc := services.NewPaymentService(intents, payments, carts)
	statsSvc := services.NewStatsService(users, menu, payments, payments, menu)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.Register(r, routes.Deps{
		Auth:      controllers.NewAuthController(authSvc),
		Users:     controllers.NewUserController(userSvc),
		Menu:      controllers.NewMenuController(menuSvc),
		Reviews:   controllers.NewReviewController(reviewSvc),
		Carts:     controllers.NewCartController(cartSvc),
		Payments:  controllers.NewPaymentController(paymentSvc),
		Stats:     controllers.NewStatsController(statsSvc),
		AdminOnly: middleware.Admin(users.RoleByEmail),
	})

	return r
}
