package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 5. Таблица пользователей
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt-хеш
	FullName  string    `gorm:"type:varchar(100)"`
	Role      int       `gorm:"not null;default:0"` // role.Role
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
