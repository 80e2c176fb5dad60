package repository

import (
	"context"
	"errors"
	"strings"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Методы для карточек специалистов. Удалённые (deleted_at) gorm отсекает сам

const preloadServices = "ServiceOfferings.ServiceMaster"

// Slug занят неудалённой карточкой, отличной от excludeID
func (r *Repository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	q := r.conn(ctx).Model(&ds.Specialist{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, wrap("slug exists", err)
	}
	return count > 0, nil
}

func (r *Repository) CreateSpecialist(ctx context.Context, s *ds.Specialist) error {
	err := r.conn(ctx).Omit(clause.Associations).Create(s).Error
	return translate(err, apperr.CodeSlugTaken)
}

func (r *Repository) GetSpecialist(ctx context.Context, id uuid.UUID) (*ds.Specialist, error) {
	var s ds.Specialist
	err := r.conn(ctx).Preload(preloadServices).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(apperr.CodeSpecialistNotFound, "specialist with ID %s not found", id)
	}
	if err != nil {
		return nil, wrap("get specialist", err)
	}
	return &s, nil
}

// Полное сохранение полей карточки, без связей
func (r *Repository) SaveSpecialist(ctx context.Context, s *ds.Specialist) error {
	err := r.conn(ctx).Omit(clause.Associations).Save(s).Error
	return translate(err, apperr.CodeSlugTaken)
}

// Публикация меняет только is_draft: без хуков и без updated_at
func (r *Repository) PublishSpecialist(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Model(&ds.Specialist{}).Where("id = ?", id).UpdateColumn("is_draft", false)
	if result.Error != nil {
		return wrap("publish specialist", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(apperr.CodeSpecialistNotFound, "specialist with ID %s not found", id)
	}
	return nil
}

// Мягкое удаление
func (r *Repository) DeleteSpecialist(ctx context.Context, id uuid.UUID) error {
	result := r.conn(ctx).Delete(&ds.Specialist{}, "id = ?", id)
	if result.Error != nil {
		return wrap("delete specialist", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(apperr.CodeSpecialistNotFound, "specialist with ID %s not found", id)
	}
	return nil
}

func (r *Repository) CountServiceOfferings(ctx context.Context, specialistID uuid.UUID) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&ds.ServiceOffering{}).Where("specialist_id = ?", specialistID).Count(&count).Error
	if err != nil {
		return 0, wrap("count offerings", err)
	}
	return count, nil
}

// Каталог: фильтры, сортировка и страница. total считается по тем же фильтрам
func (r *Repository) FindSpecialists(ctx context.Context, f ds.SpecialistFilter, offset, limit int) ([]ds.Specialist, int64, error) {
	filter := specialistFilter(f)

	var total int64
	if err := r.conn(ctx).Model(&ds.Specialist{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, wrap("count specialists", err)
	}

	items := []ds.Specialist{}
	err := r.conn(ctx).
		Scopes(filter).
		Preload(preloadServices).
		Order(specialistOrder(f.SortBy, f.SortOrder)).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "specialists", Name: "id"}}).
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, wrap("find specialists", err)
	}
	return items, total, nil
}

func specialistFilter(f ds.SpecialistFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(f.Search); s != "" {
			pattern := "%" + strings.ToLower(s) + "%"
			db = db.Where(
				"LOWER(specialists.title) LIKE ? OR LOWER(specialists.description) LIKE ? OR EXISTS ("+
					"SELECT 1 FROM service_offerings so JOIN service_masters sm ON sm.id = so.service_master_id "+
					"WHERE so.specialist_id = specialists.id AND LOWER(sm.title) LIKE ?)",
				pattern, pattern, pattern)
		}
		if f.VerificationStatus != "" {
			db = db.Where("specialists.verification_status = ?", f.VerificationStatus)
		}
		if f.IsDraft != nil {
			db = db.Where("specialists.is_draft = ?", *f.IsDraft)
		}
		if f.MinPrice != nil {
			db = db.Where("specialists.base_price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("specialists.base_price <= ?", *f.MaxPrice)
		}
		if f.MinRating != nil {
			db = db.Where("specialists.average_rating >= ?", *f.MinRating)
		}
		return db
	}
}

// newest всегда по убыванию даты, направление игнорируется.
// При равенстве ключа порядок добирается по id, иначе страницы пересекаются
func specialistOrder(by ds.SortBy, order ds.SortOrder) clause.OrderByColumn {
	desc := order != ds.SortAsc
	var column string
	switch by {
	case ds.SortPrice:
		column = "final_price"
	case ds.SortRating:
		column = "average_rating"
	case ds.SortAlphabetical:
		column = "title"
	default:
		column = "created_at"
		desc = true
	}
	return clause.OrderByColumn{Column: clause.Column{Table: "specialists", Name: column}, Desc: desc}
}
