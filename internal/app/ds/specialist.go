package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// 2. Карточка специалиста (продаваемое предложение).
// Slug уникален только среди неудалённых записей
type Specialist struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Title              string             `gorm:"type:varchar(200);not null"`
	Slug               string             `gorm:"type:varchar(255);not null;uniqueIndex:idx_specialists_slug,where:deleted_at IS NULL"`
	Description        string             `gorm:"type:text;not null"`
	BasePrice          float64            `gorm:"type:decimal(10,2);not null"`
	PlatformFee        float64            `gorm:"type:decimal(10,2);not null;default:0"`
	FinalPrice         float64            `gorm:"type:decimal(12,2);not null;default:0"` // база + комиссия до 100%
	AverageRating      float64            `gorm:"type:decimal(3,2);not null;default:0"`
	RatingCount        int                `gorm:"not null;default:0"`
	IsDraft            bool               `gorm:"not null;default:true;index"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsVerified         bool               `gorm:"not null;default:false"` // выводится из VerificationStatus
	DurationDays       int                `gorm:"not null;default:1"`
	OwnerID            *uuid.UUID         `gorm:"type:uuid;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	ServiceOfferings []ServiceOffering `gorm:"foreignKey:SpecialistID"`
}

func (s *Specialist) BeforeSave(*gorm.DB) error {
	s.IsVerified = s.VerificationStatus == VerificationVerified
	return nil
}

func (s *Specialist) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// OwnedBy: карточка принадлежит пользователю
func (s *Specialist) OwnedBy(userID uuid.UUID) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}

// Services: справочные услуги, привязанные к карточке
func (s *Specialist) Services() []ServiceMaster {
	out := make([]ServiceMaster, 0, len(s.ServiceOfferings))
	for _, o := range s.ServiceOfferings {
		out = append(out, o.ServiceMaster)
	}
	return out
}
