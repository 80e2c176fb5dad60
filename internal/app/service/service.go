package service

import (
	"context"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"
	"marketplace/internal/app/role"

	"github.com/google/uuid"
)

// TxManager запускает функцию в транзакции, передавая её через ctx
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Principal: действующий пользователь (id + роль) из проверенного токена
type Principal struct {
	ID   uuid.UUID
	Role role.Role
}

// authorize: без пользователя Unauthorized, чужая карточка без прав админа Forbidden
func authorize(p *Principal, s *ds.Specialist) error {
	if p == nil || p.ID == uuid.Nil {
		return apperr.Unauthorized("authentication required")
	}
	if p.Role.Elevated() {
		return nil
	}
	if !s.OwnedBy(p.ID) {
		return apperr.Forbidden("you don't have permission to modify this specialist")
	}
	return nil
}

// Page: параметры смещения, уже приведённые HTTP-слоем к допустимым границам
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PageResult: страница выборки и общее число записей под фильтром
type PageResult[T any] struct {
	Items []T
	Total int64
	Page  Page
}

func (r PageResult[T]) TotalPages() int {
	if r.Page.Limit <= 0 {
		return 0
	}
	return int((r.Total + int64(r.Page.Limit) - 1) / int64(r.Page.Limit))
}

func (r PageResult[T]) HasNext() bool { return r.Page.Page < r.TotalPages() }

func (r PageResult[T]) HasPrev() bool { return r.Page.Page > 1 }
