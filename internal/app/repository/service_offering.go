package repository

import (
	"context"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
)

// Методы для связей карточка-услуга. Строки только вставляются и удаляются

func (r *Repository) CreateServiceOfferings(ctx context.Context, specialistID uuid.UUID, serviceIDs []uuid.UUID) error {
	if len(serviceIDs) == 0 {
		return nil
	}
	rows := make([]ds.ServiceOffering, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		rows = append(rows, ds.ServiceOffering{SpecialistID: specialistID, ServiceMasterID: id})
	}
	return translate(r.conn(ctx).Omit("ServiceMaster").Create(&rows).Error, apperr.CodeConflict)
}

func (r *Repository) DeleteServiceOfferings(ctx context.Context, specialistID uuid.UUID) error {
	err := r.conn(ctx).Where("specialist_id = ?", specialistID).Delete(&ds.ServiceOffering{}).Error
	return wrap("delete offerings", err)
}

// Связи услуги с удалёнными карточками, которые мешают удалить услугу
func (r *Repository) DeleteServiceOfferingsByService(ctx context.Context, serviceID uuid.UUID) error {
	err := r.conn(ctx).Where("service_master_id = ?", serviceID).Delete(&ds.ServiceOffering{}).Error
	return wrap("delete offerings of service", err)
}
