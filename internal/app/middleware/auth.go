package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/config"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ключи gin.Context, которые выставляет WithAuthCheck
const (
	ContextUserUUID = "userUUID"
	ContextUserRole = "userRole"
)

var errInvalidClaims = errors.New("invalid token claims")

// Blacklist: хранилище отозванных токенов (Redis)
type Blacklist interface {
	CheckJWTInBlacklist(ctx context.Context, jwtStr string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist Blacklist
	JWT       config.JWTConfig
}

func NewAuthMiddleware(blacklist Blacklist, cfg config.JWTConfig) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		JWT:       cfg,
	}
}

// WithAuthCheck пропускает запрос с валидным неотозванным токеном.
// Пустой список ролей означает любую роль
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		jwtStr := BearerToken(gCtx.GetHeader("Authorization"))
		if jwtStr == "" {
			abort(gCtx, http.StatusUnauthorized, apperr.CodeUnauthorized, "authorization header missing")
			return
		}

		if am.Blacklist != nil {
			revoked, err := am.Blacklist.CheckJWTInBlacklist(gCtx.Request.Context(), jwtStr)
			if err != nil {
				logrus.WithError(err).Error("jwt blacklist check failed")
				abort(gCtx, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
				return
			}
			if revoked {
				abort(gCtx, http.StatusUnauthorized, apperr.CodeUnauthorized, "token has been revoked")
				return
			}
		}

		claims, err := ParseToken(jwtStr, am.JWT)
		if err != nil {
			abort(gCtx, http.StatusUnauthorized, apperr.CodeUnauthorized, "invalid or expired token")
			return
		}

		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			abort(gCtx, http.StatusForbidden, apperr.CodeForbidden, "insufficient permissions")
			return
		}

		gCtx.Set(ContextUserUUID, claims.UserUUID)
		gCtx.Set(ContextUserRole, claims.Role)

		gCtx.Next()
	}
}

// BearerToken убирает префикс "Bearer " из заголовка Authorization
func BearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(tokenString string, cfg config.JWTConfig) (*ds.JWTClaims, error) {
	method := cfg.SigningMethod
	if method == nil {
		method = jwt.SigningMethodHS256
	}

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(cfg.Token), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid || claims.UserUUID == uuid.Nil {
		return nil, errInvalidClaims
	}
	return claims, nil
}

func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}

func abort(gCtx *gin.Context, status int, code, message string) {
	gCtx.AbortWithStatusJSON(status, dto.ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    code,
	})
}
