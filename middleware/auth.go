package middleware

import (
	"net/http"

	"github.com/chlnedo/calorie-tracker/config"
)

// APIKeyMiddleware protects the API behind a shared key.
// Checks X-API-Key header.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-Key")
		expectedKey := config.GetEnv("API_KEY", "secret-key")

		if apiKey != expectedKey {
			http.Error(w, "Forbidden: Invalid API Key", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
