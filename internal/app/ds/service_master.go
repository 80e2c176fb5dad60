package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 3. Справочник услуг. Ключ картинки в MinIO непрозрачен для ядра
type ServiceMaster struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	S3Key       *string   `gorm:"type:varchar(255)"`
	BucketName  *string   `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m *ServiceMaster) BeforeCreate(*gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
