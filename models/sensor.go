package models

// Sensor types as stored in the sensors table.
const (
	SensorTemperature         = "Temperature"
	SensorHumidity            = "Humidity"
	SensorTemperatureHumidity = "Temperature/Humidity"
	SensorGPS                 = "GPS"
)

// Sensor belongs to exactly one asset: either a warehouse or a transport.
// The write path enforces the exclusivity; readers treat each sensor as an
// independent reading source even if that invariant was violated upstream.
type Sensor struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	SensorType  string `json:"sensor_type" gorm:"not null"`
	WarehouseID *uint  `json:"warehouse_id,omitempty" gorm:"index"`
	TransportID *uint  `json:"transport_id,omitempty" gorm:"index"`
}
