package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 4. Таблица многие-ко-многим (карточки-услуги). Строки не обновляются, только вставка и удаление
type ServiceOffering struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SpecialistID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_specialist_service"`
	ServiceMasterID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_specialist_service"`
	CreatedAt       time.Time

	ServiceMaster ServiceMaster `gorm:"foreignKey:ServiceMasterID"`
}

func (o *ServiceOffering) BeforeCreate(*gorm.DB) error {
	ensureID(&o.ID)
	return nil
}
