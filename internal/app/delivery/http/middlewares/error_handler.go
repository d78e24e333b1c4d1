package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in any handler into the standard 500 envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection quietly.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := panicError(rec)
			m.Log.Error("Middlewares.ErrorHandler recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.ByteString("stack", debug.Stack()),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanic(err))
		}()
		next.ServeHTTP(w, r)
	})
}

func panicError(rec interface{}) error {
	switch x := rec.(type) {
	case error:
		return x
	case string:
		return errors.New(x)
	default:
		return fmt.Errorf("unknown panic: %v", x)
	}
}
