package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/app/config"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/middleware"
	"marketplace/internal/app/role"
	"marketplace/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	imageURLTTL = 24 * time.Hour
)

//go:generate mockgen -destination=../mocks/token_blacklist.go -package=mocks marketplace/internal/app/handler TokenBlacklist

// TokenBlacklist: отозванные JWT (Redis)
type TokenBlacklist interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
	CheckJWTInBlacklist(ctx context.Context, jwtStr string) (bool, error)
}

// ImageLinker выдаёт временные ссылки на картинки услуг
type ImageLinker interface {
	GetFileURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Handler содержит обработчики REST API
type Handler struct {
	Specialists *service.SpecialistService
	FeeTiers    *service.FeeTierService
	Fees        *service.FeeCalculator
	Catalog     *service.CatalogService
	Users       *service.UserService
	Tokens      TokenBlacklist
	Images      ImageLinker // может быть nil
	JWT         config.JWTConfig
}

// ============ Вспомогательные функции ============

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func (h *Handler) pageResponse(c *gin.Context, data interface{}, meta *dto.PageMeta) {
	c.JSON(http.StatusOK, dto.SuccessResponse{
		Status: "success",
		Data:   data,
		Meta:   meta,
	})
}

// pageParams приводит page и limit к допустимым границам
func pageParams(c *gin.Context) service.Page {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return service.Page{Page: page, Limit: limit}
}

func pageMeta[T any](r service.PageResult[T]) *dto.PageMeta {
	return &dto.PageMeta{
		CurrentPage:  r.Page.Page,
		TotalPages:   r.TotalPages(),
		TotalItems:   r.Total,
		ItemsPerPage: r.Page.Limit,
		HasNextPage:  r.HasNext(),
		HasPrevPage:  r.HasPrev(),
	}
}

// parseID читает :id; при ошибке ответ уже отправлен
func (h *Handler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.badRequest(c, "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// principal: пользователь, выставленный WithAuthCheck
func principal(c *gin.Context) *service.Principal {
	value, ok := c.Get(middleware.ContextUserUUID)
	if !ok {
		return nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	value, _ = c.Get(middleware.ContextUserRole)
	userRole, _ := value.(role.Role)
	return &service.Principal{ID: id, Role: userRole}
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
