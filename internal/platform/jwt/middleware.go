package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"donation_backend/internal/api"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextEmail = "email"
	ContextRole  = "role"
)

// AuthRequired は保護ルート用のGinミドルウェアを返します。
// Authorizationヘッダーのベアラートークンを検証し、クレームを
// コンテキストに格納します。検証失敗時は401で処理を打ち切ります。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Error("missing bearer token"))
			return
		}

		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// JWT_SECRET未設定はサーバー側の設定不備
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.Error("server misconfigured"))
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			// HMAC以外の署名アルゴリズムは拒否（alg none攻撃対策）
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Error("invalid token"))
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextEmail, email)
			}
			if role, ok := claims["role"].(string); ok {
				c.Set(ContextRole, role)
			}
		}
		c.Next()
	}
}

// bearerToken はAuthorizationヘッダーからベアラートークンを取り出します。
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, prefix)
	return token, token != ""
}
