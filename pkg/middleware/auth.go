package middleware

import (
	"context"
	"net/http"

	"github.com/LeQuyetTien/vidly/pkg/auth"
	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"
	httputil "github.com/LeQuyetTien/vidly/pkg/http"
	"github.com/LeQuyetTien/vidly/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const identityKey contextKey = "identity"

// TokenHeader is where callers supply their auth token.
const TokenHeader = "x-auth-token"

// RequireAuth guards a single route: the request must carry a token the
// verifier accepts. The resulting identity is stored on the context.
func RequireAuth(verifier *auth.Verifier, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			identity, err := verifier.Verify(r.Header.Get(TokenHeader))
			if err != nil {
				log.Warn("Rejected unauthenticated request",
					"request_id", requestIDFromContext(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				if writeErr := httputil.WriteError(w, err); writeErr != nil {
					log.Error("failed to write error response", "middleware", "RequireAuth", "error", writeErr)
				}
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

// RequireAdmin guards a route already behind RequireAuth with the admin
// role flag.
func RequireAdmin(verifier *auth.Verifier, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	withAuth := RequireAuth(verifier, log)
	return func(next httprouter.Handle) httprouter.Handle {
		return withAuth(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			identity := IdentityFromContext(r.Context())
			if identity == nil || !identity.IsAdmin {
				if writeErr := httputil.WriteError(w, apperrors.Forbidden("Access denied.")); writeErr != nil {
					log.Error("failed to write error response", "middleware", "RequireAdmin", "error", writeErr)
				}
				return
			}
			next(w, r, ps)
		})
	}
}

func IdentityFromContext(ctx context.Context) *auth.Identity {
	if v := ctx.Value(identityKey); v != nil {
		if identity, ok := v.(*auth.Identity); ok {
			return identity
		}
	}
	return nil
}
