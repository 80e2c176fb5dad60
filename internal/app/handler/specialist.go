package handler

import (
	"net/http"

	"marketplace/internal/app/ds"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/service"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН КАРТОЧКИ СПЕЦИАЛИСТОВ ============

// GetSpecialists получает каталог карточек
// @Summary Каталог карточек специалистов
// @Description Фильтрация, сортировка и постраничный вывод. Сортировка newest всегда по убыванию даты
// @Tags Specialists
// @Produce json
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы (1..100)"
// @Param search query string false "Поиск по названию и описанию"
// @Param verification_status query string false "pending, verified, rejected"
// @Param is_draft query bool false "Только черновики или только опубликованные"
// @Param min_price query number false "Минимальная итоговая цена"
// @Param max_price query number false "Максимальная итоговая цена"
// @Param min_rating query number false "Минимальный рейтинг"
// @Param sort_by query string false "price, rating, alphabetical, newest"
// @Param sort_order query string false "asc или desc"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.SpecialistResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/specialists [get]
func (h *Handler) GetSpecialists(c *gin.Context) {
	var q dto.SpecialistQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	filter := ds.SpecialistFilter{
		Search:             q.Search,
		VerificationStatus: ds.VerificationStatus(q.VerificationStatus),
		IsDraft:            q.IsDraft,
		MinPrice:           q.MinPrice,
		MaxPrice:           q.MaxPrice,
		MinRating:          q.MinRating,
		SortBy:             ds.SortBy(q.SortBy),
		SortOrder:          ds.SortOrder(q.SortOrder),
	}

	result, err := h.Specialists.FindAll(c.Request.Context(), filter, pageParams(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	items := make([]dto.SpecialistResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, h.toSpecialistResponse(c.Request.Context(), &result.Items[i]))
	}
	h.pageResponse(c, items, pageMeta(result))
}

// GetSpecialist получает одну карточку
// @Summary Карточка специалиста
// @Tags Specialists
// @Produce json
// @Param id path string true "ID карточки"
// @Success 200 {object} dto.SuccessResponse{data=dto.SpecialistResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/specialists/{id} [get]
func (h *Handler) GetSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	specialist, err := h.Specialists.Get(c.Request.Context(), id)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", h.toSpecialistResponse(c.Request.Context(), specialist))
}

// CreateSpecialist создаёт черновик карточки
// @Summary Создание карточки
// @Description Карточка создаётся черновиком, цена считается по текущим уровням комиссии
// @Tags Specialists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSpecialistRequest true "Карточка"
// @Success 201 {object} dto.SuccessResponse{data=dto.SpecialistResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/specialists [post]
func (h *Handler) CreateSpecialist(c *gin.Context) {
	var req dto.CreateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	specialist, err := h.Specialists.Create(c.Request.Context(), service.CreateSpecialistInput{
		Title:        req.Title,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		DurationDays: req.DurationDays,
		Slug:         req.Slug,
		ServiceIDs:   req.ServiceIDs,
	}, principal(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, "specialist created", h.toSpecialistResponse(c.Request.Context(), specialist))
}

// UpdateSpecialist изменяет карточку
// @Summary Изменение карточки
// @Description Частичное обновление. Смена base_price пересчитывает комиссию, verification_status меняет только администратор
// @Tags Specialists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID карточки"
// @Param request body dto.UpdateSpecialistRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse{data=dto.SpecialistResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/specialists/{id} [patch]
func (h *Handler) UpdateSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	in := service.UpdateSpecialistInput{
		Title:        req.Title,
		Description:  req.Description,
		BasePrice:    req.BasePrice,
		DurationDays: req.DurationDays,
		Slug:         req.Slug,
		ServiceIDs:   req.ServiceIDs,
	}
	if req.VerificationStatus != nil {
		status := ds.VerificationStatus(*req.VerificationStatus)
		in.VerificationStatus = &status
	}

	specialist, err := h.Specialists.Update(c.Request.Context(), id, in, principal(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "specialist updated", h.toSpecialistResponse(c.Request.Context(), specialist))
}

// AssignServices заменяет набор услуг карточки
// @Summary Привязка услуг
// @Description Полностью заменяет список услуг карточки. Пустой список отвязывает все
// @Tags Specialists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID карточки"
// @Param request body dto.AssignServicesRequest true "ID услуг"
// @Success 200 {object} dto.SuccessResponse{data=dto.SpecialistResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/specialists/{id}/services [put]
func (h *Handler) AssignServices(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.AssignServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	specialist, err := h.Specialists.AssignServices(c.Request.Context(), id, req.ServiceIDs, principal(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "services assigned", h.toSpecialistResponse(c.Request.Context(), specialist))
}

// PublishSpecialist публикует черновик
// @Summary Публикация карточки
// @Description Черновик с заполненными полями и хотя бы одной услугой становится опубликованным
// @Tags Specialists
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID карточки"
// @Success 200 {object} dto.SuccessResponse{data=dto.SpecialistResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/specialists/{id}/publish [post]
func (h *Handler) PublishSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	specialist, err := h.Specialists.Publish(c.Request.Context(), id, principal(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "specialist published", h.toSpecialistResponse(c.Request.Context(), specialist))
}

// DeleteSpecialist мягко удаляет карточку
// @Summary Удаление карточки
// @Description Карточка скрывается из каталога, slug освобождается
// @Tags Specialists
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID карточки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/specialists/{id} [delete]
func (h *Handler) DeleteSpecialist(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.Specialists.Delete(c.Request.Context(), id, principal(c)); err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "specialist deleted", nil)
}
