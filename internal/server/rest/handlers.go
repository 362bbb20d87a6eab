package rest

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/dmitrijs2005/printdesk/internal/logging"
	"github.com/dmitrijs2005/printdesk/internal/server/models"
	"github.com/dmitrijs2005/printdesk/internal/server/services"
	"github.com/gorilla/mux"
)

// RecordService is the CRUD surface served for one record type T, created
// from C and patched with P.
type RecordService[T any, C any, P any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *C) (*T, error)
	Update(ctx context.Context, id int64, patch *P) (*T, error)
	Remove(ctx context.Context, id int64) (string, error)
}

type PrinterService interface {
	RecordService[models.Printer, models.Printer, models.PrinterPatch]
	Search(ctx context.Context, term string) ([]*models.Printer, error)
}

type AuthService interface {
	ValidateCredentials(ctx context.Context, email, password string) (*models.User, error)
	Login(u *models.User) (*services.LoginResult, error)
	Register(ctx context.Context, nu *models.NewUser) (*models.User, error)
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

var _ Pinger = (*sql.DB)(nil)

type recordHandlers[T any, C any, P any] struct {
	svc       RecordService[T, C, P]
	operation string
	logger    logging.Logger
}

func (h *recordHandlers[T, C, P]) register(r *mux.Router, prefix string) {
	r.HandleFunc(prefix, h.list).Methods(http.MethodGet)
	r.HandleFunc(prefix, h.create).Methods(http.MethodPost)
	r.HandleFunc(prefix+"/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc(prefix+"/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc(prefix+"/{id}", h.remove).Methods(http.MethodDelete)
}

func (h *recordHandlers[T, C, P]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_list", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *recordHandlers[T, C, P]) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_get", err)
		return
	}
	item, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_get", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *recordHandlers[T, C, P]) create(w http.ResponseWriter, r *http.Request) {
	var in C
	if err := decodeBody(r, &in); err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_create", err)
		return
	}
	item, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_create", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *recordHandlers[T, C, P]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_update", err)
		return
	}
	var patch P
	if err := decodeBody(r, &patch); err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_update", err)
		return
	}
	item, err := h.svc.Update(r.Context(), id, &patch)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_update", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *recordHandlers[T, C, P]) remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_delete", err)
		return
	}
	msg, err := h.svc.Remove(r.Context(), id)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, h.operation+"_delete", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

type printerHandlers struct {
	*recordHandlers[models.Printer, models.Printer, models.PrinterPatch]
	printers PrinterService
}

func (h *printerHandlers) search(w http.ResponseWriter, r *http.Request) {
	items, err := h.printers.Search(r.Context(), mux.Vars(r)["term"])
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, "printer_search", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authHandlers struct {
	auth   AuthService
	logger logging.Logger
}

func (h *authHandlers) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeBody(r, &in); err != nil {
		writeMappedError(r.Context(), h.logger, w, "auth_login", err)
		return
	}

	user, err := h.auth.ValidateCredentials(r.Context(), in.Email, in.Password)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, "auth_login", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "Invalid credentials")
		return
	}

	res, err := h.auth.Login(user)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, "auth_login", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *authHandlers) register(w http.ResponseWriter, r *http.Request) {
	var in models.NewUser
	if err := decodeBody(r, &in); err != nil {
		writeMappedError(r.Context(), h.logger, w, "auth_register", err)
		return
	}
	user, err := h.auth.Register(r.Context(), &in)
	if err != nil {
		writeMappedError(r.Context(), h.logger, w, "auth_register", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type healthHandler struct {
	db Pinger
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeMappedError(ctx context.Context, logger logging.Logger, w http.ResponseWriter, operation string, err error) {
	status, code, msg := mapError(err)
	fields := []any{
		"operation", operation,
		"status_code", status,
		"error_code", code,
		"request_id", RequestIDFromContext(ctx),
		"error", err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", fields...)
	} else {
		logger.Debug(ctx, "request rejected", fields...)
	}
	writeError(w, status, code, msg)
}
