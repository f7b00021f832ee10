package leveling

// Curve constants
const (
	// StandardTailCost is the flat XP cost of every level past the standard table
	StandardTailCost int64 = 60000

	// LegacyFlatCost is the per-level cost of the early levels in the legacy curve
	LegacyFlatCost int64 = 5000

	// LegacyMaxEarlyLevel is the last flat-cost level of the legacy curve
	LegacyMaxEarlyLevel = 20

	// LegacyTailCost is the per-level cost after the legacy curve's early levels
	LegacyTailCost int64 = 60000
)

// Curve names accepted by TableByName
const (
	CurveStandard = "standard"
	CurveLegacy   = "legacy"
)

// Time estimate text
const (
	EstimateTextDone     = "max level reached"
	EstimateTextUnderMin = "~1 min"
	EstimateTextUnknown  = "unknown"
)

// Time units, in minutes
const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// Error messages for table construction
const (
	ErrMsgEmptyTable         = "progression table has no tiers"
	ErrMsgBadTierLevel       = "tier levels must start at 1 and increase by 1"
	ErrMsgBadTierCost        = "tier xp_to_next_level must be positive"
	ErrMsgBadTierCumulative  = "tier cumulative_xp_at_start does not match previous tier"
	ErrMsgBadFirstCumulative = "first tier must start at 0 XP"
	ErrMsgBadTailCost        = "tail cost per level must be positive"
	ErrMsgTierOverflow       = "tier cumulative XP overflows int64"
)
