package service

import (
	"context"
	"strings"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SpecialistRepository interface {
	GetSpecialist(ctx context.Context, id uuid.UUID) (*ds.Specialist, error)
	CreateSpecialist(ctx context.Context, s *ds.Specialist) error
	SaveSpecialist(ctx context.Context, s *ds.Specialist) error
	PublishSpecialist(ctx context.Context, id uuid.UUID) error
	DeleteSpecialist(ctx context.Context, id uuid.UUID) error
	CountServiceOfferings(ctx context.Context, specialistID uuid.UUID) (int64, error)
	FindSpecialists(ctx context.Context, f ds.SpecialistFilter, offset, limit int) ([]ds.Specialist, int64, error)
}

type CreateSpecialistInput struct {
	Title        string
	Description  string
	BasePrice    float64
	DurationDays int
	Slug         string // пустой: slug из title
	ServiceIDs   []uuid.UUID
}

// UpdateSpecialistInput: nil поля не меняются. ServiceIDs == nil оставляет
// услуги как есть, пустой срез отвязывает все
type UpdateSpecialistInput struct {
	Title              *string
	Description        *string
	BasePrice          *float64
	DurationDays       *int
	Slug               *string
	VerificationStatus *ds.VerificationStatus
	ServiceIDs         []uuid.UUID
}

// SpecialistService ведёт карточку от черновика до публикации.
// Все изменения выполняются в одной транзакции
type SpecialistService struct {
	repo        SpecialistRepository
	tx          TxManager
	slugs       *SlugAllocator
	fees        *FeeCalculator
	assignments *AssignmentCoordinator
}

func NewSpecialistService(
	repo SpecialistRepository,
	tx TxManager,
	slugs *SlugAllocator,
	fees *FeeCalculator,
	assignments *AssignmentCoordinator,
) *SpecialistService {
	return &SpecialistService{
		repo:        repo,
		tx:          tx,
		slugs:       slugs,
		fees:        fees,
		assignments: assignments,
	}
}

func (s *SpecialistService) Create(ctx context.Context, in CreateSpecialistInput, p *Principal) (*ds.Specialist, error) {
	if p == nil || p.ID == uuid.Nil {
		return nil, apperr.Unauthorized("authentication required")
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	var created *ds.Specialist
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		base := in.Slug
		if base == "" {
			base = in.Title
		}
		slug, err := s.slugs.Allocate(ctx, Slugify(base), uuid.Nil)
		if err != nil {
			return err
		}

		quote, err := s.fees.ComputeFee(ctx, in.BasePrice)
		if err != nil {
			return err
		}

		ownerID := p.ID
		specialist := &ds.Specialist{
			Title:              in.Title,
			Slug:               slug,
			Description:        in.Description,
			BasePrice:          quote.Amount,
			PlatformFee:        quote.Fee,
			FinalPrice:         quote.FinalPrice,
			IsDraft:            true,
			VerificationStatus: ds.VerificationPending,
			DurationDays:       in.DurationDays,
			OwnerID:            &ownerID,
		}
		if err := s.repo.CreateSpecialist(ctx, specialist); err != nil {
			return err
		}

		if err := s.assignments.Assign(ctx, specialist.ID, in.ServiceIDs); err != nil {
			return err
		}

		created, err = s.repo.GetSpecialist(ctx, specialist.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"id":    created.ID,
		"slug":  created.Slug,
		"owner": p.ID,
	}).Info("specialist created")
	return created, nil
}

func (s *SpecialistService) Update(ctx context.Context, id uuid.UUID, in UpdateSpecialistInput, p *Principal) (*ds.Specialist, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	var updated *ds.Specialist
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		specialist, err := s.repo.GetSpecialist(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(p, specialist); err != nil {
			return err
		}

		if in.VerificationStatus != nil && *in.VerificationStatus != specialist.VerificationStatus && !p.Role.Elevated() {
			return apperr.Forbidden("only administrators can change verification status")
		}

		if in.Slug != nil {
			if slug := Slugify(*in.Slug); slug != specialist.Slug {
				specialist.Slug, err = s.slugs.Allocate(ctx, slug, id)
				if err != nil {
					return err
				}
			}
		}

		if in.BasePrice != nil && *in.BasePrice != specialist.BasePrice {
			quote, err := s.fees.ComputeFee(ctx, *in.BasePrice)
			if err != nil {
				return err
			}
			specialist.BasePrice = quote.Amount
			specialist.PlatformFee = quote.Fee
			specialist.FinalPrice = quote.FinalPrice
		}

		if in.Title != nil {
			specialist.Title = *in.Title
		}
		if in.Description != nil {
			specialist.Description = *in.Description
		}
		if in.DurationDays != nil {
			specialist.DurationDays = *in.DurationDays
		}
		if in.VerificationStatus != nil {
			specialist.VerificationStatus = *in.VerificationStatus
		}

		if err := s.repo.SaveSpecialist(ctx, specialist); err != nil {
			return err
		}

		if in.ServiceIDs != nil {
			if err := s.assignments.Reassign(ctx, id, in.ServiceIDs); err != nil {
				return err
			}
		}

		updated, err = s.repo.GetSpecialist(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("id", id).Info("specialist updated")
	return updated, nil
}

// AssignServices заменяет набор услуг карточки
func (s *SpecialistService) AssignServices(ctx context.Context, id uuid.UUID, serviceIDs []uuid.UUID, p *Principal) (*ds.Specialist, error) {
	var updated *ds.Specialist
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		specialist, err := s.repo.GetSpecialist(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(p, specialist); err != nil {
			return err
		}
		if err := s.assignments.Reassign(ctx, id, serviceIDs); err != nil {
			return err
		}
		updated, err = s.repo.GetSpecialist(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"id": id, "services": len(updated.ServiceOfferings)}).Info("specialist services assigned")
	return updated, nil
}

// Publish: единственный переход черновик -> опубликовано. Меняется только is_draft
func (s *SpecialistService) Publish(ctx context.Context, id uuid.UUID, p *Principal) (*ds.Specialist, error) {
	var published *ds.Specialist
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		specialist, err := s.repo.GetSpecialist(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(p, specialist); err != nil {
			return err
		}

		if !specialist.IsDraft {
			return apperr.InvalidState(apperr.CodeAlreadyPublished, "specialist is already published")
		}
		if specialist.Title == "" || specialist.Description == "" || specialist.BasePrice <= 0 || specialist.DurationDays <= 0 {
			return apperr.ValidationMsg("missing required fields for publishing")
		}

		services, err := s.repo.CountServiceOfferings(ctx, id)
		if err != nil {
			return err
		}
		if services == 0 {
			return apperr.ValidationMsg("specialist must have at least one service to be published")
		}
		if specialist.VerificationStatus == ds.VerificationRejected {
			return apperr.ValidationMsg("cannot publish a rejected specialist")
		}

		if err := s.repo.PublishSpecialist(ctx, id); err != nil {
			return err
		}
		published, err = s.repo.GetSpecialist(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("id", id).Info("specialist published")
	return published, nil
}

// Delete: мягкое удаление, slug освобождается
func (s *SpecialistService) Delete(ctx context.Context, id uuid.UUID, p *Principal) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		specialist, err := s.repo.GetSpecialist(ctx, id)
		if err != nil {
			return err
		}
		if err := authorize(p, specialist); err != nil {
			return err
		}
		return s.repo.DeleteSpecialist(ctx, id)
	})
	if err != nil {
		return err
	}

	logrus.WithField("id", id).Info("specialist deleted")
	return nil
}

func (s *SpecialistService) Get(ctx context.Context, id uuid.UUID) (*ds.Specialist, error) {
	return s.repo.GetSpecialist(ctx, id)
}

// FindAll читает вне транзакции
func (s *SpecialistService) FindAll(ctx context.Context, f ds.SpecialistFilter, page Page) (PageResult[ds.Specialist], error) {
	if !f.SortBy.IsValid() {
		f.SortBy = ds.SortNewest
	}
	f.SortOrder = ds.SortOrder(strings.ToLower(string(f.SortOrder)))
	if f.SortOrder != ds.SortAsc {
		f.SortOrder = ds.SortDesc
	}

	items, total, err := s.repo.FindSpecialists(ctx, f, page.Offset(), page.Limit)
	if err != nil {
		return PageResult[ds.Specialist]{}, err
	}
	return PageResult[ds.Specialist]{Items: items, Total: total, Page: page}, nil
}

func validateCreate(in CreateSpecialistInput) error {
	var fe fieldErrors
	fe.length("title", in.Title, 2, 200)
	fe.length("description", in.Description, 10, 5000)
	fe.price("base_price", in.BasePrice)
	if in.DurationDays < 1 {
		fe.add("duration_days", "must be at least 1")
	}
	if in.Slug != "" {
		fe.length("slug", in.Slug, 3, 255)
	}
	return fe.err()
}

func validateUpdate(in UpdateSpecialistInput) error {
	var fe fieldErrors
	if in.Title != nil {
		fe.length("title", *in.Title, 2, 200)
	}
	if in.Description != nil {
		fe.length("description", *in.Description, 10, 5000)
	}
	if in.BasePrice != nil {
		fe.price("base_price", *in.BasePrice)
	}
	if in.DurationDays != nil && *in.DurationDays < 1 {
		fe.add("duration_days", "must be at least 1")
	}
	if in.Slug != nil {
		fe.length("slug", *in.Slug, 3, 255)
	}
	if in.VerificationStatus != nil && !in.VerificationStatus.IsValid() {
		fe.add("verification_status", "must be one of pending, verified, rejected")
	}
	return fe.err()
}
