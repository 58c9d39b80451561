package item

// WaterBonusAmount is the fixed amount of water granted per application.
// Hard-coded on the item rather than derived from terrain context; a known
// simplification carried over deliberately.
const WaterBonusAmount = 5

// Trader offer ranges. Food and water offers are drawn from [0, TraderMaxGive),
// the gold price from [TraderMinGold, TraderMinGold+TraderGoldSpread).
const (
	TraderMaxGive    = 3
	TraderMinGold    = 1
	TraderGoldSpread = 3
)
