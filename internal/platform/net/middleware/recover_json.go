package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "ttt/internal/platform/errors"
	"ttt/internal/platform/logger"
	phttp "ttt/internal/platform/net/http"
)

// RecoverJSON turns a panic into the standard 500 envelope and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := phttp.RequestID(r)
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("stack", string(debug.Stack())).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, env := phttp.ErrorEnvelope(perr.PanicErrf("panic recovered"), reqID)
			phttp.JSON(w, status, env)
		}()
		next.ServeHTTP(w, r)
	})
}
