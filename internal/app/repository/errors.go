package repository

import (
	"errors"
	"fmt"

	"marketplace/internal/app/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// коды SQLSTATE PostgreSQL
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// translate превращает нарушения ограничений хранилища в Conflict.
// dupCode: код для нарушения уникального индекса таблицы. Остальные ошибки
// возвращаются как есть
func translate(err error, dupCode string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return apperr.Conflict(apperr.CodeRangeOverlap, "fee range overlaps an existing tier")
		case pgUniqueViolation:
			return apperr.Conflict(dupCode, "unique constraint %s violated", pgErr.ConstraintName)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict(dupCode, "unique constraint violated")
	}
	return err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
