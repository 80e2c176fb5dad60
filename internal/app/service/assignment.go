package service

import (
	"context"

	"marketplace/internal/app/apperr"

	"github.com/google/uuid"
)

type AssignmentRepository interface {
	CountServiceMasters(ctx context.Context, ids []uuid.UUID) (int64, error)
	CreateServiceOfferings(ctx context.Context, specialistID uuid.UUID, serviceIDs []uuid.UUID) error
	DeleteServiceOfferings(ctx context.Context, specialistID uuid.UUID) error
}

// AssignmentCoordinator связывает карточку с услугами справочника.
// Вызывается внутри транзакции вызывающего
type AssignmentCoordinator struct {
	repo AssignmentRepository
}

func NewAssignmentCoordinator(repo AssignmentRepository) *AssignmentCoordinator {
	return &AssignmentCoordinator{repo: repo}
}

// Assign: все id должны существовать, иначе ничего не вставляется
func (a *AssignmentCoordinator) Assign(ctx context.Context, specialistID uuid.UUID, serviceIDs []uuid.UUID) error {
	ids := uniqueIDs(serviceIDs)
	if len(ids) == 0 {
		return nil
	}

	found, err := a.repo.CountServiceMasters(ctx, ids)
	if err != nil {
		return err
	}
	if found != int64(len(ids)) {
		return apperr.InvalidReference(apperr.CodeInvalidServiceIDs, "one or more service IDs are invalid")
	}

	return a.repo.CreateServiceOfferings(ctx, specialistID, ids)
}

// Reassign заменяет набор услуг карточки: удалить все связи, затем Assign
func (a *AssignmentCoordinator) Reassign(ctx context.Context, specialistID uuid.UUID, serviceIDs []uuid.UUID) error {
	if err := a.repo.DeleteServiceOfferings(ctx, specialistID); err != nil {
		return err
	}
	return a.Assign(ctx, specialistID, serviceIDs)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
