package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TierName: допустимые имена уровней комиссии
type TierName string

const (
	TierBasic      TierName = "basic"
	TierStandard   TierName = "standard"
	TierPremium    TierName = "premium"
	TierEnterprise TierName = "enterprise"
)

var TierNames = []TierName{TierBasic, TierStandard, TierPremium, TierEnterprise}

func (n TierName) IsValid() bool {
	for _, v := range TierNames {
		if v == n {
			return true
		}
	}
	return false
}

// 1. Уровни комиссии площадки. Диапазоны [MinValue, MaxValue] не пересекаются
type FeeTier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          TierName  `gorm:"type:varchar(20);not null;uniqueIndex:idx_fee_tiers_name"`
	MinValue      int       `gorm:"not null;index"`
	MaxValue      int       `gorm:"not null"`
	FeePercentage float64   `gorm:"type:decimal(5,2);not null"` // проценты, 0..100
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t *FeeTier) BeforeCreate(*gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// Overlaps: пересечение закрытых диапазонов
func (t *FeeTier) Overlaps(min, max int) bool {
	return min <= t.MaxValue && t.MinValue <= max
}
