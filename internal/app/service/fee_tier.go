package service

import (
	"context"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FeeTierRepository interface {
	FindTierForAmount(ctx context.Context, amount float64) (*ds.FeeTier, error)
	HighestTier(ctx context.Context) (*ds.FeeTier, error)
	GetFeeTier(ctx context.Context, id uuid.UUID) (*ds.FeeTier, error)
	FeeTierNameExists(ctx context.Context, name ds.TierName, excludeID uuid.UUID) (bool, error)
	FindOverlappingTier(ctx context.Context, min, max int, excludeID uuid.UUID) (*ds.FeeTier, error)
	CreateFeeTier(ctx context.Context, tier *ds.FeeTier) error
	SaveFeeTier(ctx context.Context, tier *ds.FeeTier) error
	DeleteFeeTier(ctx context.Context, id uuid.UUID) error
	ListFeeTiers(ctx context.Context, offset, limit int) ([]ds.FeeTier, int64, error)
}

type CreateTierInput struct {
	Name          ds.TierName
	MinValue      int
	MaxValue      int
	FeePercentage float64
}

// UpdateTierInput: nil поля не меняются
type UpdateTierInput struct {
	Name          *ds.TierName
	MinValue      *int
	MaxValue      *int
	FeePercentage *float64
}

// FeeTierService владеет набором уровней комиссии и держит их диапазоны непересекающимися
type FeeTierService struct {
	repo FeeTierRepository
	tx   TxManager
}

func NewFeeTierService(repo FeeTierRepository, tx TxManager) *FeeTierService {
	return &FeeTierService{repo: repo, tx: tx}
}

// ResolveTier возвращает уровень, содержащий сумму, или nil
func (s *FeeTierService) ResolveTier(ctx context.Context, amount float64) (*ds.FeeTier, error) {
	return s.repo.FindTierForAmount(ctx, amount)
}

func (s *FeeTierService) GetTier(ctx context.Context, id uuid.UUID) (*ds.FeeTier, error) {
	return s.repo.GetFeeTier(ctx, id)
}

func (s *FeeTierService) ListTiers(ctx context.Context, page Page) (PageResult[ds.FeeTier], error) {
	items, total, err := s.repo.ListFeeTiers(ctx, page.Offset(), page.Limit)
	if err != nil {
		return PageResult[ds.FeeTier]{}, err
	}
	return PageResult[ds.FeeTier]{Items: items, Total: total, Page: page}, nil
}

func (s *FeeTierService) CreateTier(ctx context.Context, in CreateTierInput) (*ds.FeeTier, error) {
	if err := validateTier(&in.Name, &in.MinValue, &in.MaxValue, &in.FeePercentage); err != nil {
		return nil, err
	}
	if in.MinValue >= in.MaxValue {
		return nil, apperr.InvalidRange("minValue must be less than maxValue")
	}

	tier := &ds.FeeTier{
		Name:          in.Name,
		MinValue:      in.MinValue,
		MaxValue:      in.MaxValue,
		FeePercentage: in.FeePercentage,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkName(ctx, tier.Name, uuid.Nil); err != nil {
			return err
		}
		if err := s.checkOverlap(ctx, tier.MinValue, tier.MaxValue, uuid.Nil); err != nil {
			return err
		}
		return s.repo.CreateFeeTier(ctx, tier)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tier": tier.Name,
		"min":  tier.MinValue,
		"max":  tier.MaxValue,
	}).Info("fee tier created")
	return tier, nil
}

func (s *FeeTierService) UpdateTier(ctx context.Context, id uuid.UUID, in UpdateTierInput) (*ds.FeeTier, error) {
	if err := validateTier(in.Name, in.MinValue, in.MaxValue, in.FeePercentage); err != nil {
		return nil, err
	}

	var tier *ds.FeeTier
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		tier, err = s.repo.GetFeeTier(ctx, id)
		if err != nil {
			return err
		}

		if in.MinValue != nil || in.MaxValue != nil {
			min, max := tier.MinValue, tier.MaxValue
			if in.MinValue != nil {
				min = *in.MinValue
			}
			if in.MaxValue != nil {
				max = *in.MaxValue
			}
			if min >= max {
				return apperr.InvalidRange("minValue must be less than maxValue")
			}
			if err := s.checkOverlap(ctx, min, max, id); err != nil {
				return err
			}
			tier.MinValue, tier.MaxValue = min, max
		}

		if in.Name != nil && *in.Name != tier.Name {
			if err := s.checkName(ctx, *in.Name, id); err != nil {
				return err
			}
			tier.Name = *in.Name
		}
		if in.FeePercentage != nil {
			tier.FeePercentage = *in.FeePercentage
		}

		return s.repo.SaveFeeTier(ctx, tier)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("tier", tier.Name).Info("fee tier updated")
	return tier, nil
}

// DeleteTier не трогает карточки: их сохранённые цены остаются прежними
func (s *FeeTierService) DeleteTier(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.DeleteFeeTier(ctx, id)
	})
	if err != nil {
		return err
	}
	logrus.WithField("id", id).Info("fee tier deleted")
	return nil
}

func (s *FeeTierService) checkName(ctx context.Context, name ds.TierName, excludeID uuid.UUID) error {
	exists, err := s.repo.FeeTierNameExists(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict(apperr.CodeTierNameExists, "platform fee tier '%s' already exists", name)
	}
	return nil
}

func (s *FeeTierService) checkOverlap(ctx context.Context, min, max int, excludeID uuid.UUID) error {
	overlapping, err := s.repo.FindOverlappingTier(ctx, min, max, excludeID)
	if err != nil {
		return err
	}
	if overlapping != nil {
		return apperr.Conflict(apperr.CodeRangeOverlap,
			"range [%d, %d] overlaps with existing tier '%s' [%d, %d]",
			min, max, overlapping.Name, overlapping.MinValue, overlapping.MaxValue)
	}
	return nil
}

// validateTier проверяет только переданные поля
func validateTier(name *ds.TierName, min, max *int, pct *float64) error {
	var fe fieldErrors
	if name != nil && !name.IsValid() {
		fe.add("name", "must be one of basic, standard, premium, enterprise")
	}
	if min != nil && *min < 0 {
		fe.add("min_value", "must not be negative")
	}
	if max != nil && *max < 0 {
		fe.add("max_value", "must not be negative")
	}
	if pct != nil && (*pct < 0 || *pct > 100) {
		fe.add("fee_percentage", "must be between 0 and 100")
	}
	return fe.err()
}
