package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"lexiflow/internal/config"
	"lexiflow/internal/model"
	"lexiflow/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWT.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.JWT.Issuer))
	}
	if cfg.JWT.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.JWT.Audience))
	}
	secret := []byte(cfg.JWT.SecretKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required", "", model.ErrUnauthorized))
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Fields(authHeader)
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header format must be Bearer {token}", "", model.ErrUnauthorized))
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			}, parserOpts...)
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token is invalid or expired", "", model.ErrUnauthorized))
				return
			}

			subject := claims.SubjectValue()
			if subject == "" {
				logger.Warn("JWT auth failed: subject claim missing")
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token does not identify a user", "", model.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), model.SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(WithSubject(ctx, subject)))
		})
	}
}

// ResolveActorID は認証済みコンテキストから操作ユーザーIDを取得します。
// subject が無い、または整数でない場合は常に ErrUnauthorized を返します。
func ResolveActorID(ctx context.Context) (int, error) {
	subject, ok := ctx.Value(model.SubjectKey).(string)
	if !ok || subject == "" {
		return 0, model.NewAppError("UNAUTHORIZED", "Authentication required", "", model.ErrUnauthorized)
	}
	actorID, err := strconv.Atoi(subject)
	if err != nil || actorID <= 0 {
		return 0, model.NewAppError("UNAUTHORIZED", "Invalid user ID in token", "",
			fmt.Errorf("%w: subject %q is not a user id", model.ErrUnauthorized, subject))
	}
	return actorID, nil
}
