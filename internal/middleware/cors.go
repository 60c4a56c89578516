package middleware

import "net/http"

// CORS returns a middleware that allows cross-origin requests from any
// origin. The API serves browser dashboards hosted elsewhere, and the API
// itself carries no credentials (auth is out of scope), so a permissive
// policy is acceptable here.
//
// Browsers send a "preflight" OPTIONS request before PUT/DELETE and any
// request with a JSON body; we answer it with 204 and the allow headers so
// the real request follows.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
