package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	// SubjectKey は認証済みリクエストの subject クレーム (文字列) を格納するキー
	SubjectKey ContextKey = "subject"
)

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	// 発行側によっては sub ではなく nameid にユーザーIDが入る
	NameID string `json:"nameid,omitempty"`
	jwt.RegisteredClaims
}

// SubjectValue は sub を優先し、なければ nameid を返します。
func (c *JWTCustomClaims) SubjectValue() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.NameID
}
