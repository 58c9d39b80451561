package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_AddResources_AllowDeficit(t *testing.T) {
	p := &Player{Food: 2, Water: 0, Gold: 1, Policy: PolicyAllowDeficit}

	p.AddFood(-5)
	p.AddWater(-3)
	p.AddGold(-2)

	assert.Equal(t, -3, p.Food, "food should go negative without clamping")
	assert.Equal(t, -3, p.Water, "water should go negative without clamping")
	assert.Equal(t, -1, p.Gold, "gold should go negative without clamping")
}

func TestPlayer_AddResources_DefaultPolicyAllowsDeficit(t *testing.T) {
	// Zero-value policy must behave like PolicyAllowDeficit
	p := &Player{}

	p.AddWater(-7)

	assert.Equal(t, -7, p.Water)
}

func TestPlayer_AddResources_ClampToZero(t *testing.T) {
	p := &Player{Food: 2, Water: 1, Gold: 3, Policy: PolicyClampToZero}

	p.AddFood(-5)
	p.AddWater(-1)
	p.AddGold(2)

	assert.Equal(t, 0, p.Food, "food should clamp at zero")
	assert.Equal(t, 0, p.Water)
	assert.Equal(t, 5, p.Gold, "positive deltas are unaffected by clamping")
}

func TestItemKind_Valid(t *testing.T) {
	assert.True(t, KindWaterBonus.Valid())
	assert.True(t, KindTrader.Valid())
	assert.False(t, ItemKind("terrain_spring").Valid())
	assert.False(t, ItemKind("").Valid())
}
