package repository

import (
	"context"
	"errors"
	"strings"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*ds.User, error) {
	var user ds.User
	err := r.conn(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(apperr.CodeUserNotFound, "user with ID %s not found", id)
	}
	if err != nil {
		return nil, wrap("get user", err)
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	var user ds.User
	err := r.conn(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(apperr.CodeUserNotFound, "user with email %s not found", email)
	}
	if err != nil {
		return nil, wrap("get user", err)
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *ds.User) error {
	user.Email = strings.ToLower(user.Email)
	return translate(r.conn(ctx).Create(user).Error, apperr.CodeEmailExists)
}
