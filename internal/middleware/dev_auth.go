// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"lexiflow/internal/model"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーの値を検証せずに subject としてコンテキストに設定します。
// ヘッダーが無い場合は何も設定しないため、更新系APIは ResolveActorID で 401 になります。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		GetLogger(r.Context()).Debug("[DEV AUTH] user id set to context (no validation)", "user_id", userID)
		ctx := context.WithValue(r.Context(), model.SubjectKey, userID)
		next.ServeHTTP(w, r.WithContext(WithSubject(ctx, userID)))
	})
}
