// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	authfeature "github.com/younifirst/younifirst/internal/app/features/auth"
	competitionsfeature "github.com/younifirst/younifirst/internal/app/features/competitions"
	dashboardfeature "github.com/younifirst/younifirst/internal/app/features/dashboard"
	eventsfeature "github.com/younifirst/younifirst/internal/app/features/events"
	forumfeature "github.com/younifirst/younifirst/internal/app/features/forum"
	healthfeature "github.com/younifirst/younifirst/internal/app/features/health"
	homefeature "github.com/younifirst/younifirst/internal/app/features/home"
	lostfoundfeature "github.com/younifirst/younifirst/internal/app/features/lostfound"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema setup
// have completed. Every feature receives the (possibly nil) database handle
// from DBDeps; nothing reaches for ambient globals.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Diagnostics endpoint; must stay reachable with the database down.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.MongoDatabase, logger)
	r.Mount("/test", healthfeature.Routes(healthHandler))

	// Liveness payload at the root.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Email/password registration and login. No sessions or tokens are
	// issued; every other endpoint is anonymous.
	authHandler := authfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	// Per-collection count summary.
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Resource endpoints: list + create only.
	competitionsHandler := competitionsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/competitions", competitionsfeature.Routes(competitionsHandler))

	lostfoundHandler := lostfoundfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/lostfound", lostfoundfeature.Routes(lostfoundHandler))

	eventsHandler := eventsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	forumHandler := forumfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/forum", forumfeature.Routes(forumHandler))

	return r, nil
}
