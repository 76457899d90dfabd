package middleware

import (
	"net/http"
	"runtime/debug"

	"animal-training/internal/platform/logger"
	"animal-training/internal/platform/respond"

	"go.uber.org/zap"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con el logger del
// request y responde 500 JSON genérico.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.From(r.Context()).Error("panic recovered",
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
			)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}()

		next.ServeHTTP(w, r)
	})
}
