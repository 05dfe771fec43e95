package middleware

import (
	"net/http"
)

// HTMX marks requests made by htmx so handlers can choose between a full
// page and a fragment, and tells caches the response varies on that header.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		if is {
			w.Header().Add("Vary", "HX-Request")
		}
		ctx := WithHTMX(r.Context(), is)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
