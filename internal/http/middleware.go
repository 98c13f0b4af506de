package http

import (
	"net/http"
	"strings"
)

// Swagger UI needs inline scripts, styles, and data URIs to render; every
// other endpoint serves JSON only and gets a deny-all policy.
const (
	cspAPI     = "default-src 'none'"
	cspSwagger = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
)

// SecurityHeaders adds security-related headers to all responses.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if strings.HasPrefix(r.URL.Path, "/swagger/") {
			h.Set("Content-Security-Policy", cspSwagger)
		} else {
			h.Set("Content-Security-Policy", cspAPI)
		}

		next.ServeHTTP(w, r)
	})
}
