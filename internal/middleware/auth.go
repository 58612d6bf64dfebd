package middleware

import (
	"net/http"
	"strings"

	"chefanton/internal/auth"
	"chefanton/internal/httputil"
)

// EditorAuth guards the editing surface. Requests must carry a valid
// Supabase bearer token from a signed-in user; public content routes are
// mounted outside this middleware and stay open.
func EditorAuth(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}
