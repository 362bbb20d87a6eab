package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/gorilla/mux"
)

type apiError struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

const (
	codeBadRequest   = "BAD_REQUEST"
	codeUnauthorized = "UNAUTHORIZED"
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeInternal     = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, apiError{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// mapError converts a service error into status, code and a client-safe
// message. Unclassified errors never expose their text.
func mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrorBadRequest):
		return http.StatusBadRequest, codeBadRequest, common.PublicMessage(err, "bad request")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, codeUnauthorized, common.PublicMessage(err, "Unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, codeNotFound, common.PublicMessage(err, "resource not found")
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict, codeConflict, common.PublicMessage(err, "conflict")
	default:
		return http.StatusInternalServerError, codeInternal, "internal server error"
	}
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return common.Errorf(common.ErrorBadRequest, "invalid request body: %s", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return common.Errorf(common.ErrorBadRequest, "request body must contain a single JSON value")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, common.Errorf(common.ErrorBadRequest, "invalid id %q", raw)
	}
	return id, nil
}
