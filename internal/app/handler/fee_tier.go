package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/service"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН УРОВНИ КОМИССИИ ============

// GetFeeTiers получает список уровней комиссии
// @Summary Список уровней комиссии
// @Description Возвращает уровни комиссии площадки по возрастанию min_value
// @Tags PlatformFees
// @Produce json
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы (1..100)"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.FeeTierResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/platform-fees [get]
func (h *Handler) GetFeeTiers(c *gin.Context) {
	result, err := h.FeeTiers.ListTiers(c.Request.Context(), pageParams(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	tiers := make([]dto.FeeTierResponse, 0, len(result.Items))
	for i := range result.Items {
		tiers = append(tiers, toFeeTierResponse(&result.Items[i]))
	}
	h.pageResponse(c, tiers, pageMeta(result))
}

// GetFeeTier получает один уровень комиссии
// @Summary Уровень комиссии
// @Tags PlatformFees
// @Produce json
// @Param id path string true "ID уровня"
// @Success 200 {object} dto.SuccessResponse{data=dto.FeeTierResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/platform-fees/{id} [get]
func (h *Handler) GetFeeTier(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	tier, err := h.FeeTiers.GetTier(c.Request.Context(), id)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", toFeeTierResponse(tier))
}

// CalculateFee рассчитывает комиссию для суммы
// @Summary Расчёт комиссии
// @Description Комиссия и итоговая цена для базовой цены. Сумма вне всех диапазонов считается по уровню с наибольшим max_value
// @Tags PlatformFees
// @Produce json
// @Param amount query number true "Базовая цена"
// @Success 200 {object} dto.SuccessResponse{data=dto.FeeQuoteResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/platform-fees/calculate [get]
func (h *Handler) CalculateFee(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		h.errorHandler(c, apperr.Validation(apperr.FieldError{Field: "amount", Message: "must be a number"}))
		return
	}

	quote, err := h.Fees.ComputeFee(c.Request.Context(), amount)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "", dto.FeeQuoteResponse{
		Amount:        quote.Amount,
		PlatformFee:   quote.Fee,
		FinalPrice:    quote.FinalPrice,
		TierName:      string(quote.TierName),
		FeePercentage: quote.FeePercentage,
		Fallback:      quote.Fallback,
	})
}

// CreateFeeTier создаёт уровень комиссии
// @Summary Создание уровня комиссии
// @Description Диапазон не должен пересекаться с существующими (только для администраторов)
// @Tags PlatformFees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeTierRequest true "Уровень"
// @Success 201 {object} dto.SuccessResponse{data=dto.FeeTierResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/platform-fees [post]
func (h *Handler) CreateFeeTier(c *gin.Context) {
	var req dto.CreateFeeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	tier, err := h.FeeTiers.CreateTier(c.Request.Context(), service.CreateTierInput{
		Name:          ds.TierName(req.Name),
		MinValue:      *req.MinValue,
		MaxValue:      *req.MaxValue,
		FeePercentage: *req.FeePercentage,
	})
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, "platform fee created", toFeeTierResponse(tier))
}

// UpdateFeeTier изменяет уровень комиссии
// @Summary Изменение уровня комиссии
// @Description Частичное обновление, итоговый диапазон проверяется заново (только для администраторов)
// @Tags PlatformFees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID уровня"
// @Param request body dto.UpdateFeeTierRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse{data=dto.FeeTierResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/platform-fees/{id} [patch]
func (h *Handler) UpdateFeeTier(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateFeeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	in := service.UpdateTierInput{
		MinValue:      req.MinValue,
		MaxValue:      req.MaxValue,
		FeePercentage: req.FeePercentage,
	}
	if req.Name != nil {
		name := ds.TierName(*req.Name)
		in.Name = &name
	}

	tier, err := h.FeeTiers.UpdateTier(c.Request.Context(), id, in)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "platform fee updated", toFeeTierResponse(tier))
}

// DeleteFeeTier удаляет уровень комиссии
// @Summary Удаление уровня комиссии
// @Description Цены существующих карточек не пересчитываются (только для администраторов)
// @Tags PlatformFees
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID уровня"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/platform-fees/{id} [delete]
func (h *Handler) DeleteFeeTier(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.FeeTiers.DeleteTier(c.Request.Context(), id); err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "platform fee deleted", nil)
}
