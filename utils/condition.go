package utils

// ConditionTier is the severity of a single reading. It is derived on
// every read and never stored.
type ConditionTier string

const (
	TierNormal  ConditionTier = "normal"
	TierWarning ConditionTier = "warning"
	TierDanger  ConditionTier = "danger"
)

// Canonical cargo condition bounds. Every view classifies through this
// file; threshold literals anywhere else are a bug.
const (
	dangerTempLow   = 0.0
	dangerTempHigh  = 25.0
	dangerHumLow    = 30.0
	dangerHumHigh   = 80.0
	warningTempLow  = 2.0
	warningTempHigh = 20.0
	warningHumLow   = 40.0
	warningHumHigh  = 70.0
)

// ClassifyCondition maps a reading's temperature and humidity to a tier.
// A nil field participates in no comparison, so a missing measurement
// never triggers an alert on its own; two nil fields classify as normal,
// which is the documented "cannot alert on missing data" choice.
// Bounds are inclusive on the safe side: 25.0 is still warning, 25.0001
// is danger.
func ClassifyCondition(temperature, humidity *float64) ConditionTier {
	if temperature != nil && (*temperature < dangerTempLow || *temperature > dangerTempHigh) {
		return TierDanger
	}
	if humidity != nil && (*humidity < dangerHumLow || *humidity > dangerHumHigh) {
		return TierDanger
	}
	if temperature != nil && (*temperature < warningTempLow || *temperature > warningTempHigh) {
		return TierWarning
	}
	if humidity != nil && (*humidity < warningHumLow || *humidity > warningHumHigh) {
		return TierWarning
	}
	return TierNormal
}

// ClassifyWarehouseCondition is the storage-side variant. Warehouses
// tolerate a wider band than a moving reefer, so the bounds diverge
// deliberately from ClassifyCondition rather than silently reusing it.
func ClassifyWarehouseCondition(temperature, humidity *float64) ConditionTier {
	if temperature != nil && (*temperature < -5 || *temperature > 30) {
		return TierDanger
	}
	if humidity != nil && (*humidity < 25 || *humidity > 85) {
		return TierDanger
	}
	if temperature != nil && (*temperature < 0 || *temperature > 25) {
		return TierWarning
	}
	if humidity != nil && (*humidity < 35 || *humidity > 75) {
		return TierWarning
	}
	return TierNormal
}

// AlertMessageFor returns the operator-facing reason for an alert,
// first matching rule wins. "Unknown Alert" is reachable on purpose: a
// warning-tier reading can sit inside all four danger bounds.
func AlertMessageFor(temperature, humidity *float64) string {
	if temperature != nil && *temperature < dangerTempLow {
		return "Freezing Temperature"
	}
	if temperature != nil && *temperature > dangerTempHigh {
		return "High Temperature"
	}
	if humidity != nil && *humidity < dangerHumLow {
		return "Low Humidity"
	}
	if humidity != nil && *humidity > dangerHumHigh {
		return "High Humidity"
	}
	return "Unknown Alert"
}

// Label returns the display form used for the condition_status column.
func (t ConditionTier) Label() string {
	switch t {
	case TierDanger:
		return "Danger"
	case TierWarning:
		return "Warning"
	default:
		return "Normal"
	}
}

// Rank orders tiers for sorting: danger > warning > normal.
func (t ConditionTier) Rank() int {
	switch t {
	case TierDanger:
		return 2
	case TierWarning:
		return 1
	default:
		return 0
	}
}
