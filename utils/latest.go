package utils

import "github.com/FarHanZzzz/Supply-chain-main-sub000/models"

// NewerReading reports whether a is more recent than b under the
// (timestamp, reading id) ordering key. Timestamps have second
// resolution, so equal timestamps fall back to the id.
func NewerReading(a, b models.SensorReading) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.ID > b.ID
}

// LatestPerSensor reduces a reading set to the most recent reading per
// sensor. A sensor with no readings simply has no entry; callers treat
// a missing key as "no data", never as an error.
func LatestPerSensor(readings []models.SensorReading) map[uint]models.SensorReading {
	latest := make(map[uint]models.SensorReading)
	for _, r := range readings {
		cur, ok := latest[r.SensorID]
		if !ok || NewerReading(r, cur) {
			latest[r.SensorID] = r
		}
	}
	return latest
}

// LatestReading returns the single most recent reading across the whole
// set, or nil when the set is empty. This is the per-transport winner
// for the monitoring table, where a transport may carry several sensors
// but gets one row.
func LatestReading(readings []models.SensorReading) *models.SensorReading {
	var win *models.SensorReading
	for i := range readings {
		if win == nil || NewerReading(readings[i], *win) {
			win = &readings[i]
		}
	}
	return win
}
