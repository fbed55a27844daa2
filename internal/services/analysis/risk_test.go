package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"MeanRev/internal/domain/models"
)

func TestLiquidityScoreSteps(t *testing.T) {
	e := testEngine()

	cases := []struct {
		volume float64
		want   float64
	}{
		{15000, 100},
		{10000, 90}, // boundary is exclusive
		{6000, 90},
		{2500, 75},
		{1500, 60},
		{600, 45},
		{150, 30},
		{100, 15},
		{50, 15},
		{0, 15},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, e.LiquidityScore(c.volume), "volume %v", c.volume)
	}
}

func TestVolatilityRiskTiers(t *testing.T) {
	e := testEngine()

	cases := []struct {
		name               string
		shortVol, longVol  float64
		avgPrice           float64
		want               models.RiskTier
	}{
		{"quiet", 2, 2, 100, models.RiskLow},
		{"moderate", 10, 10, 100, models.RiskMedium},
		{"one-sided spike still high", 40, 0, 100, models.RiskHigh},
		{"zero reference price", 1, 1, 0, models.RiskHigh},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, e.VolatilityRisk(c.shortVol, c.longVol, c.avgPrice))
		})
	}
}
