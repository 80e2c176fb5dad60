package handler

import (
	"io"
	"net/http"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/service"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20

// ============ ДОМЕН СПРАВОЧНИК УСЛУГ ============

// GetServiceMasters получает справочник услуг
// @Summary Справочник услуг
// @Description Постраничный список услуг по алфавиту
// @Tags ServiceOfferings
// @Produce json
// @Param page query int false "Номер страницы"
// @Param limit query int false "Размер страницы (1..100)"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.ServiceMasterResponse}
// @Router /api/service-offerings [get]
func (h *Handler) GetServiceMasters(c *gin.Context) {
	result, err := h.Catalog.List(c.Request.Context(), pageParams(c))
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	items := make([]dto.ServiceMasterResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, h.toServiceMasterResponse(c.Request.Context(), &result.Items[i]))
	}
	h.pageResponse(c, items, pageMeta(result))
}

// GetServiceMaster получает одну услугу
// @Summary Услуга из справочника
// @Tags ServiceOfferings
// @Produce json
// @Param id path string true "ID услуги"
// @Success 200 {object} dto.SuccessResponse{data=dto.ServiceMasterResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/service-offerings/{id} [get]
func (h *Handler) GetServiceMaster(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	m, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "", h.toServiceMasterResponse(c.Request.Context(), m))
}

// CreateServiceMaster добавляет услугу в справочник
// @Summary Создание услуги
// @Tags ServiceOfferings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceMasterRequest true "Услуга"
// @Success 201 {object} dto.SuccessResponse{data=dto.ServiceMasterResponse}
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/service-offerings [post]
func (h *Handler) CreateServiceMaster(c *gin.Context) {
	var req dto.CreateServiceMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	m, err := h.Catalog.Create(c.Request.Context(), service.ServiceMasterInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusCreated, "service created", h.toServiceMasterResponse(c.Request.Context(), m))
}

// UpdateServiceMaster изменяет услугу
// @Summary Изменение услуги
// @Tags ServiceOfferings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Param request body dto.UpdateServiceMasterRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse{data=dto.ServiceMasterResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/service-offerings/{id} [patch]
func (h *Handler) UpdateServiceMaster(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	m, err := h.Catalog.Update(c.Request.Context(), id, service.UpdateServiceMasterInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "service updated", h.toServiceMasterResponse(c.Request.Context(), m))
}

// DeleteServiceMaster удаляет услугу из справочника
// @Summary Удаление услуги
// @Description Услугу, привязанную к карточкам, удалить нельзя
// @Tags ServiceOfferings
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/service-offerings/{id} [delete]
func (h *Handler) DeleteServiceMaster(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.Catalog.Delete(c.Request.Context(), id); err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "service deleted", nil)
}

// UploadServiceImage загружает изображение услуги
// @Summary Загрузка изображения услуги
// @Description Загружает изображение в MinIO, старое изображение удаляется (только для администраторов)
// @Tags ServiceOfferings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse{data=dto.ServiceMasterResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/service-offerings/{id}/image [post]
func (h *Handler) UploadServiceImage(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.badRequest(c, "image file is missing in the request")
		return
	}
	if file.Size > maxImageSize {
		h.errorHandler(c, apperr.Validation(apperr.FieldError{Field: "image", Message: "must not exceed 10 MB"}))
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	defer openedFile.Close()

	data, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorHandler(c, err)
		return
	}

	m, err := h.Catalog.UploadImage(c.Request.Context(), id, data, file.Filename)
	if err != nil {
		h.errorHandler(c, err)
		return
	}
	h.successResponse(c, http.StatusOK, "image uploaded", h.toServiceMasterResponse(c.Request.Context(), m))
}
