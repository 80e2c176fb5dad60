package service

import (
	"context"
	"fmt"
	"math"

	"marketplace/internal/app/apperr"
	"marketplace/internal/app/ds"
)

// TierResolver: часть хранилища уровней, нужная калькулятору
type TierResolver interface {
	FindTierForAmount(ctx context.Context, amount float64) (*ds.FeeTier, error)
	HighestTier(ctx context.Context) (*ds.FeeTier, error)
}

// FeeQuote: результат расчёта комиссии
type FeeQuote struct {
	Amount        float64
	Fee           float64
	FinalPrice    float64
	TierName      ds.TierName
	FeePercentage float64
	Fallback      bool // сумма не попала ни в один диапазон
}

// MaxAmount: наибольшая сумма, которую вмещает колонка decimal(10,2)
const MaxAmount = 99_999_999.99

// FeeCalculator считает комиссию площадки. Побочных эффектов нет
type FeeCalculator struct {
	tiers TierResolver
}

func NewFeeCalculator(tiers TierResolver) *FeeCalculator {
	return &FeeCalculator{tiers: tiers}
}

// ComputeFee: уровень по сумме, иначе уровень с наибольшим max_value.
// Без уровней: InvalidState. NaN, бесконечность и суммы вне [0, MaxAmount]
// отклоняются до перевода в копейки
func (c *FeeCalculator) ComputeFee(ctx context.Context, amount float64) (FeeQuote, error) {
	if !validAmount(amount, 0) {
		return FeeQuote{}, apperr.Validation(apperr.FieldError{
			Field:   "amount",
			Message: fmt.Sprintf("must be a number between 0 and %.2f", MaxAmount),
		})
	}

	tier, err := c.tiers.FindTierForAmount(ctx, amount)
	if err != nil {
		return FeeQuote{}, err
	}

	fallback := false
	if tier == nil {
		tier, err = c.tiers.HighestTier(ctx)
		if err != nil {
			return FeeQuote{}, err
		}
		if tier == nil {
			return FeeQuote{}, apperr.InvalidState(apperr.CodeFeeTiersNotConfigured, "no platform fee tiers are configured")
		}
		fallback = true
	}

	amountCents := toCents(amount)
	feeCents := percentOf(amountCents, tier.FeePercentage)

	return FeeQuote{
		Amount:        fromCents(amountCents),
		Fee:           fromCents(feeCents),
		FinalPrice:    fromCents(amountCents + feeCents),
		TierName:      tier.Name,
		FeePercentage: tier.FeePercentage,
		Fallback:      fallback,
	}, nil
}

// Деньги считаются в целых копейках, проценты в базисных пунктах (1% = 100 bp)

// validAmount: конечное число в [lower, MaxAmount]
func validAmount(v, lower float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= lower && v <= MaxAmount
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

// percentOf округляет половину вверх до копейки
func percentOf(cents int64, pct float64) int64 {
	bp := int64(math.Round(pct * 100))
	return (cents*bp + 5000) / 10000
}
