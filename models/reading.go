package models

import "time"

// SensorReading is one timestamped measurement. Temperature, humidity,
// travel duration and coordinates are all optional: a GPS sensor reports
// none of the first two, a temperature-only sensor no humidity. Missing
// fields stay nil end to end so downstream views never mistake "absent"
// for zero.
//
// "Most recent" is always decided by (Timestamp, ID): timestamps have
// second resolution, so two readings may collide and the auto-increment
// id breaks the tie.
type SensorReading struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	SensorID       uint      `json:"sensor_id" gorm:"index:idx_sensor_timestamp;not null"`
	Timestamp      time.Time `json:"timestamp" gorm:"index:idx_sensor_timestamp;not null"`
	Temperature    *float64  `json:"temperature,omitempty"`
	Humidity       *float64  `json:"humidity,omitempty"`
	TravelDuration *float64  `json:"travel_duration,omitempty"`
	Coordinates    *string   `json:"coordinates,omitempty"`
}

func (SensorReading) TableName() string {
	return "sensor_readings"
}
