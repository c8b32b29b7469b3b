package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexiflow/internal/config"
	"lexiflow/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = testSecret
	cfg.JWT.Issuer = "LexiFlow"
	cfg.JWT.Audience = "LexiFlowClients"
	return cfg
}

func signToken(t *testing.T, claims model.JWTCustomClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() model.JWTCustomClaims {
	return model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    "LexiFlow",
			Audience:  jwt.ClaimStrings{"LexiFlowClients"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

// subjectEcho は context の subject をそのまま返すハンドラ
func subjectEcho(w http.ResponseWriter, r *http.Request) {
	subject, _ := r.Context().Value(model.SubjectKey).(string)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(subject))
}

func TestJWTAuthMiddleware(t *testing.T) {
	handler := JWTAuthMiddleware(testAuthConfig())(http.HandlerFunc(subjectEcho))

	nameIDOnly := validClaims()
	nameIDOnly.Subject = ""
	nameIDOnly.NameID = "77"

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"other"}

	noSubject := validClaims()
	noSubject.Subject = ""

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantSubject string
	}{
		{"valid token", "Bearer " + signToken(t, validClaims(), testSecret), http.StatusOK, "42"},
		{"nameid fallback", "Bearer " + signToken(t, nameIDOnly, testSecret), http.StatusOK, "77"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + signToken(t, validClaims(), "other-secret"), http.StatusUnauthorized, ""},
		{"expired", "Bearer " + signToken(t, expired, testSecret), http.StatusUnauthorized, ""},
		{"wrong issuer", "Bearer " + signToken(t, wrongIssuer, testSecret), http.StatusUnauthorized, ""},
		{"wrong audience", "Bearer " + signToken(t, wrongAudience, testSecret), http.StatusUnauthorized, ""},
		{"no subject", "Bearer " + signToken(t, noSubject, testSecret), http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantSubject, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"success":false`)
			}
		})
	}
}

func TestResolveActorID(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		want    int
		wantErr bool
	}{
		{"numeric subject", context.WithValue(context.Background(), model.SubjectKey, "15"), 15, false},
		{"no subject", context.Background(), 0, true},
		{"empty subject", context.WithValue(context.Background(), model.SubjectKey, ""), 0, true},
		{"non numeric subject", context.WithValue(context.Background(), model.SubjectKey, "alice"), 0, true},
		{"zero subject", context.WithValue(context.Background(), model.SubjectKey, "0"), 0, true},
		{"negative subject", context.WithValue(context.Background(), model.SubjectKey, "-4"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveActorID(tt.ctx)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrUnauthorized)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	handler := DevUserContextMiddleware(http.HandlerFunc(subjectEcho))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "9")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "9", rr.Body.String())

	// ヘッダーが無い場合は subject を設定しない
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}
