package domain

// ItemKind identifies which concrete item behavior a catalog definition maps to.
type ItemKind string

const (
	// KindWaterBonus grants a fixed amount of water on application.
	KindWaterBonus ItemKind = "water_bonus"

	// KindTrader offers a randomized food/water-for-gold trade on every application.
	KindTrader ItemKind = "trader"
)

// Valid reports whether the kind is one of the known item kinds.
func (k ItemKind) Valid() bool {
	switch k {
	case KindWaterBonus, KindTrader:
		return true
	}
	return false
}
