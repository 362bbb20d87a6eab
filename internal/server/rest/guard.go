package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/dmitrijs2005/printdesk/internal/logging"
	"github.com/dmitrijs2005/printdesk/internal/server/auth"
)

// Principal is the authenticated caller attached to a guarded request.
type Principal struct {
	UserID int64
	Email  string
}

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// PrincipalFromContext returns the principal set by the access guard.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}

func bearerTokenFromHeader(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", errors.New("missing bearer token")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

// accessGuard rejects requests without a valid bearer token. Any
// authenticated principal may proceed; roles are not checked.
func accessGuard(tokens TokenVerifier, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerTokenFromHeader(r.Header.Get(common.AuthorizationHeaderName))
			if err != nil {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				logger.Debug(r.Context(), "token rejected",
					"request_id", RequestIDFromContext(r.Context()),
					"error", err.Error(),
				)
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyPrincipal, Principal{UserID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
