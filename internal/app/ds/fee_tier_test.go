package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeTier_Overlaps(t *testing.T) {
	tier := FeeTier{MinValue: 1001, MaxValue: 5000}

	tests := []struct {
		name     string
		min, max int
		want     bool
	}{
		{"lower bound inside", 4000, 6000, true},
		{"upper bound inside", 500, 1500, true},
		{"contains existing", 0, 10000, true},
		{"touching upper bound", 5000, 6000, true},
		{"strictly below", 0, 1000, false},
		{"strictly above", 5001, 9000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tier.Overlaps(tt.min, tt.max))
		})
	}
}

func TestTierName_IsValid(t *testing.T) {
	assert.True(t, TierPremium.IsValid())
	assert.False(t, TierName("gold").IsValid())
}
