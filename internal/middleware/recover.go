package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"lexiflow/internal/model"
	"lexiflow/internal/webutil"
)

// RecoverMiddleware はハンドラ内の panic を捕捉し、500 の失敗エンベロープを返します。
// スタックはサーバーログにのみ出力します。
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				// net/http に接続の中断を任せる
				panic(rvr)
			}

			logger := GetLogger(r.Context())
			logger.Error("Panic recovered",
				slog.Any("panic", rvr),
				slog.String("stack", string(debug.Stack())),
			)
			webutil.HandleError(w, logger, fmt.Errorf("%w: panic: %v", model.ErrInternalServer, rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
