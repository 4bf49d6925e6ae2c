package middleware

import (
	"net/http"

	"github.com/openisa/nps-stub/pkg/auth"
)

// AuthMiddleware enforces the bearer-token gate on stub routes. A
// missing or malformed Authorization header is rejected with 403 before
// any business logic runs, mirroring the upstream API platform.
//
// In presence mode (nil jwtService) any bearer token passes. When a
// JWTService is given, the token is additionally validated and its
// claims attached to the request context.
func AuthMiddleware(jwtService *auth.JWTService, skipPaths []string) func(http.Handler) http.Handler {
	skipSet := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skipSet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := skipSet[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := auth.ExtractBearer(r.Header.Get("Authorization"))
			if !ok {
				forbidden(w)
				return
			}

			if jwtService != nil {
				claims, err := jwtService.ValidateToken(token)
				if err != nil {
					forbidden(w)
					return
				}
				r = r.WithContext(auth.ContextWithClaims(r.Context(), claims))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"code":"FORBIDDEN","message":"Missing required bearer token"}`)) //nolint:errcheck
}
