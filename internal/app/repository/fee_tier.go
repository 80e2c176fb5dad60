package repository

import (
	"context"
	"errors"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для уровней комиссии

// Уровень, диапазон которого содержит сумму. nil, если такого нет
func (r *Repository) FindTierForAmount(ctx context.Context, amount float64) (*ds.FeeTier, error) {
	var tiers []ds.FeeTier
	err := r.conn(ctx).
		Where("min_value <= ? AND max_value >= ?", amount, amount).
		Order("min_value").
		Limit(1).
		Find(&tiers).Error
	if err != nil {
		return nil, wrap("find tier for amount", err)
	}
	if len(tiers) == 0 {
		return nil, nil
	}
	return &tiers[0], nil
}

// Уровень с наибольшей верхней границей. nil, если уровней нет
func (r *Repository) HighestTier(ctx context.Context) (*ds.FeeTier, error) {
	var tiers []ds.FeeTier
	err := r.conn(ctx).Order("max_value DESC").Limit(1).Find(&tiers).Error
	if err != nil {
		return nil, wrap("highest tier", err)
	}
	if len(tiers) == 0 {
		return nil, nil
	}
	return &tiers[0], nil
}

func (r *Repository) GetFeeTier(ctx context.Context, id uuid.UUID) (*ds.FeeTier, error) {
	var tier ds.FeeTier
	err := r.conn(ctx).Where("id = ?", id).First(&tier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(apperr.CodeTierNotFound, "platform fee with ID %s not found", id)
	}
	if err != nil {
		return nil, wrap("get tier", err)
	}
	return &tier, nil
}

// Имя занято другим уровнем (excludeID не учитывается)
func (r *Repository) FeeTierNameExists(ctx context.Context, name ds.TierName, excludeID uuid.UUID) (bool, error) {
	q := r.conn(ctx).Model(&ds.FeeTier{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, wrap("tier name exists", err)
	}
	return count > 0, nil
}

// Первый уровень, пересекающийся с [min, max]: нижняя граница внутри
// существующего, верхняя граница внутри существующего или новый диапазон его содержит
func (r *Repository) FindOverlappingTier(ctx context.Context, min, max int, excludeID uuid.UUID) (*ds.FeeTier, error) {
	q := r.conn(ctx).
		Where("(min_value <= ? AND max_value >= ?) OR (min_value <= ? AND max_value >= ?) OR (min_value >= ? AND max_value <= ?)",
			min, min, max, max, min, max)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}

	var tiers []ds.FeeTier
	if err := q.Order("min_value").Limit(1).Find(&tiers).Error; err != nil {
		return nil, wrap("find overlapping tier", err)
	}
	if len(tiers) == 0 {
		return nil, nil
	}
	return &tiers[0], nil
}

func (r *Repository) CreateFeeTier(ctx context.Context, tier *ds.FeeTier) error {
	err := r.conn(ctx).Create(tier).Error
	return translate(err, apperr.CodeTierNameExists)
}

func (r *Repository) SaveFeeTier(ctx context.Context, tier *ds.FeeTier) error {
	err := r.conn(ctx).Save(tier).Error
	return translate(err, apperr.CodeTierNameExists)
}

func (r *Repository) DeleteFeeTier(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&ds.FeeTier{}, "id = ?", id)
	if result.Error != nil {
		return wrap("delete tier", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(apperr.CodeTierNotFound, "platform fee with ID %s not found", id)
	}
	return nil
}

// Страница уровней по возрастанию min_value и общее количество
func (r *Repository) ListFeeTiers(ctx context.Context, offset, limit int) ([]ds.FeeTier, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&ds.FeeTier{}).Count(&total).Error; err != nil {
		return nil, 0, wrap("count tiers", err)
	}

	tiers := []ds.FeeTier{}
	err := r.conn(ctx).Order("min_value ASC").Offset(offset).Limit(limit).Find(&tiers).Error
	if err != nil {
		return nil, 0, wrap("list tiers", err)
	}
	return tiers, total, nil
}
