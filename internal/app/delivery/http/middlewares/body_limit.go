package middlewares

import (
	"net/http"
	"sehatnama-service/internal/pkg/constvars"
	"strings"
)

// BodyLimit caps JSON bodies. Multipart uploads carry their own, larger limit
// applied by the document controller.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
			limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
			if limit <= 0 {
				limit = 1 << 20
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
