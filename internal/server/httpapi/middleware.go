package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// identityFromContext returns the verified user identifier placed on the
// context by requireAuth. It is the only trusted source of "who is calling";
// request bodies never contribute identity.
func identityFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// requireAuth is the single token-validation stage applied to every
// protected route. No handler parses the Authorization header itself.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			jsonErrorFor(w, common.ErrMissingCredential)
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			jsonErrorFor(w, common.ErrInvalidCredential)
			return
		}

		userID, err := auth.VerifyToken(token, s.jwtSecret)
		if err != nil {
			jsonErrorFor(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}
