// Package rest is the HTTP transport: routing, the access guard, JSON
// encoding of results and errors, request logging and metrics.
package rest

import (
	"net/http"

	"github.com/dmitrijs2005/printdesk/internal/logging"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/gorilla/mux"
)

// Deps are the collaborators served by the router.
type Deps struct {
	Auth        AuthService
	Users       RecordService[models.User, models.NewUser, models.UserPatch]
	Printers    PrinterService
	Permissions RecordService[models.Permission, models.Permission, models.PermissionPatch]
	Tokens      TokenVerifier
	DB          Pinger
	Metrics     *Metrics
	Logger      logging.Logger
}

// NewRouter wires every route. /auth/*, /healthz and /metrics are public;
// everything else requires a bearer token.
func NewRouter(d Deps) *mux.Router {
	logger := d.Logger.With("module", "rest")

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Use(requestIDMiddleware, recoverMiddleware(logger), loggingMiddleware(logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
		r.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.Handle("/healthz", &healthHandler{db: d.DB}).Methods(http.MethodGet)

	ah := &authHandlers{auth: d.Auth, logger: logger}
	r.HandleFunc("/auth/login", ah.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", ah.register).Methods(http.MethodPost)

	guarded := r.NewRoute().Subrouter()
	guarded.Use(accessGuard(d.Tokens, logger))

	(&recordHandlers[models.User, models.NewUser, models.UserPatch]{
		svc: d.Users, operation: "user", logger: logger,
	}).register(guarded, "/users")

	ph := &printerHandlers{
		recordHandlers: &recordHandlers[models.Printer, models.Printer, models.PrinterPatch]{
			svc: d.Printers, operation: "printer", logger: logger,
		},
		printers: d.Printers,
	}
	guarded.HandleFunc("/printers/search/{term}", ph.search).Methods(http.MethodGet)
	ph.register(guarded, "/printers")

	(&recordHandlers[models.Permission, models.Permission, models.PermissionPatch]{
		svc: d.Permissions, operation: "permission", logger: logger,
	}).register(guarded, "/permissions")

	return r
}
