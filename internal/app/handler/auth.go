package handler

import (
	"net/http"
	"time"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/middleware"
	"marketplace/internal/app/role"
	"marketplace/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const tokenIssuer = "marketplace"

// issueToken подписывает JWT для пользователя
func (h *Handler) issueToken(user *ds.User) (string, error) {
	method := h.JWT.SigningMethod
	if method == nil {
		method = jwt.SigningMethodHS256
	}

	now := time.Now()
	token := jwt.NewWithClaims(method, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    tokenIssuer,
		},
		UserUUID: user.ID,
		Role:     role.Role(user.Role),
	})
	return token.SignedString([]byte(h.JWT.Token))
}

func (h *Handler) loginResponse(user *ds.User) (dto.LoginResponse, error) {
	token, err := h.issueToken(user)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.JWT.ExpiresIn.Seconds()),
		User:      toUserResponse(user),
	}, nil
}

// RegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создаёт клиента или специалиста и сразу выдаёт JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} dto.SuccessResponse{data=dto.LoginResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	userRole := role.Client
	if req.Role != "" {
		parsed, err := role.Parse(req.Role)
		if err != nil {
			h.errorHandler(c, apperr.Validation(apperr.FieldError{Field: "role", Message: "must be client or specialist"}))
			return
		}
		userRole = parsed
	}

	user, err := h.Users.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     userRole,
	})
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	resp, err := h.loginResponse(user)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, "user registered", resp)
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.SuccessResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	resp, err := h.loginResponse(user)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "user logged in", resp)
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Токен попадает в blacklist до истечения своего срока
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *Handler) LogoutUser(c *gin.Context) {
	tokenString := middleware.BearerToken(c.GetHeader("Authorization"))

	claims, err := middleware.ParseToken(tokenString, h.JWT)
	if err != nil {
		h.errorHandler(c, apperr.Unauthorized("invalid or expired token"))
		return
	}

	// вычисление TTL до истечения токена
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.Tokens.WriteJWTToBlacklist(c.Request.Context(), tokenString, ttl); err != nil {
			h.errorHandler(c, err)
			return
		}
	}

	h.successResponse(c, http.StatusOK, "user logged out", nil)
}

// GetUserProfile получение профиля пользователя
// @Summary Профиль пользователя
// @Description Возвращает информацию о текущем пользователе
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *Handler) GetUserProfile(c *gin.Context) {
	p := principal(c)
	if p == nil {
		h.errorHandler(c, apperr.Unauthorized("authentication required"))
		return
	}

	user, err := h.Users.Profile(c.Request.Context(), p.ID)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", toUserResponse(user))
}
