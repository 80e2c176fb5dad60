package repository

import (
	"context"
	"errors"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для справочника услуг

func (r *Repository) ListServiceMasters(ctx context.Context, offset, limit int) ([]ds.ServiceMaster, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&ds.ServiceMaster{}).Count(&total).Error; err != nil {
		return nil, 0, wrap("count services", err)
	}

	items := []ds.ServiceMaster{}
	err := r.conn(ctx).Order("title ASC").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, wrap("list services", err)
	}
	return items, total, nil
}

func (r *Repository) GetServiceMaster(ctx context.Context, id uuid.UUID) (*ds.ServiceMaster, error) {
	var m ds.ServiceMaster
	err := r.conn(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(apperr.CodeServiceNotFound, "service with ID %s not found", id)
	}
	if err != nil {
		return nil, wrap("get service", err)
	}
	return &m, nil
}

func (r *Repository) CreateServiceMaster(ctx context.Context, m *ds.ServiceMaster) error {
	return translate(r.conn(ctx).Create(m).Error, apperr.CodeConflict)
}

func (r *Repository) SaveServiceMaster(ctx context.Context, m *ds.ServiceMaster) error {
	return translate(r.conn(ctx).Save(m).Error, apperr.CodeConflict)
}

func (r *Repository) DeleteServiceMaster(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&ds.ServiceMaster{}, "id = ?", id)
	if result.Error != nil {
		return wrap("delete service", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(apperr.CodeServiceNotFound, "service with ID %s not found", id)
	}
	return nil
}

// Сколько из переданных (уникальных) id существует
func (r *Repository) CountServiceMasters(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.conn(ctx).Model(&ds.ServiceMaster{}).Where("id IN ?", ids).Count(&count).Error
	if err != nil {
		return 0, wrap("count services", err)
	}
	return count, nil
}

// Услуга привязана хотя бы к одной неудалённой карточке
func (r *Repository) ServiceMasterInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&ds.ServiceOffering{}).
		Joins("JOIN specialists ON specialists.id = service_offerings.specialist_id AND specialists.deleted_at IS NULL").
		Where("service_offerings.service_master_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, wrap("service in use", err)
	}
	return count > 0, nil
}
