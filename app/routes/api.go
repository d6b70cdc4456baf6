// Package routes declares the HTTP surface of the application.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/bistro-boss-server/app/controllers"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/ctx"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/metrics"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/middleware"
	"github.com/shashiranjanraj/bistro-boss-server/pkg/router"
)

// Deps carries everything route registration needs. AdminOnly must run
// after middleware.Auth, so it is always paired with it below.
type Deps struct {
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Menu     *controllers.MenuController
	Reviews  *controllers.ReviewController
	Carts    *controllers.CartController
	Payments *controllers.PaymentController
	Stats    *controllers.StatsController

	AdminOnly router.Middleware
}

// Register mounts every application route on the router.
func Register(r *router.Router, d Deps) {
	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Bistro Boss Is running"))
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	r.Post("/jwt", "auth.token", ctx.Wrap(d.Auth.IssueToken))

	// Users. Registration is open; the admin check is self-scoped and the
	// rest of the collection is admin only.
	r.Post("/users", "users.register", ctx.Wrap(d.Users.Register))
	r.Get("/user/{email}", "users.isAdmin", ctx.Wrap(d.Users.IsAdmin), middleware.Auth)
	r.Get("/users", "users.list", ctx.Wrap(d.Users.List), middleware.Auth)
	r.Patch("/users/{id}", "users.promote", ctx.Wrap(d.Users.Promote), middleware.Auth, d.AdminOnly)
	r.Delete("/users/{id}", "users.delete", ctx.Wrap(d.Users.Delete), middleware.Auth, d.AdminOnly)

	// Menu. Reads are public, create/delete are admin only. Update is left
	// open so the dashboard edit form works without a fresh token.
	r.Get("/menu", "menu.list", ctx.Wrap(d.Menu.List))
	r.Get("/menu/{id}", "menu.get", ctx.Wrap(d.Menu.Get))
	r.Post("/menu", "menu.create", ctx.Wrap(d.Menu.Create), middleware.Auth, d.AdminOnly)
	r.Patch("/menu/{id}", "menu.update", ctx.Wrap(d.Menu.Update))
	r.Delete("/menu/{id}", "menu.delete", ctx.Wrap(d.Menu.Delete), middleware.Auth, d.AdminOnly)

	r.Get("/reviews", "reviews.list", ctx.Wrap(d.Reviews.List))

	// Carts.
	r.Get("/carts", "carts.list", ctx.Wrap(d.Carts.List))
	r.Post("/carts", "carts.add", ctx.Wrap(d.Carts.Add))
	r.Delete("/carts/{id}", "carts.remove", ctx.Wrap(d.Carts.Remove))

	// Payments. The intent and settle calls are reachable without a token;
	// only the history endpoint is tied to the caller's identity.
	r.Post("/create-payment-intent", "payments.intent", ctx.Wrap(d.Payments.CreateIntent))
	r.Post("/payments", "payments.settle", ctx.Wrap(d.Payments.Settle))
	r.Get("/payments/{email}", "payments.history", ctx.Wrap(d.Payments.ListByEmail), middleware.Auth)

	// Dashboards.
	r.Get("/admin-states", "stats.admin", ctx.Wrap(d.Stats.AdminSummary), middleware.Auth, d.AdminOnly)
	r.Get("/order/stats", "stats.orders", ctx.Wrap(d.Stats.CategoryStats))
}
