package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthMiddleware trusts the authenticated user id the gateway forwards in
// X-User-ID. Session issuance and token verification live upstream; this
// service only needs the id for ownership checks.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{
					"code":    "UNAUTHENTICATED",
					"message": "authentication required",
				},
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserID(r *http.Request) string {
	if v := r.Context().Value(UserIDKey); v != nil {
		return v.(string)
	}
	return ""
}
