package models

import "time"

// MonitoringRow is the per-transport projection behind the live
// monitoring table. Built fresh on every query; a transport with no
// readings still gets a row with the reading fields left nil.
type MonitoringRow struct {
	TransportID        uint       `json:"transport_id"`
	VehicleType        string     `json:"vehicle_type"`
	DriverName         string     `json:"driver_name"`
	Destination        string     `json:"destination"`
	ShipmentStatus     string     `json:"shipment_status"`
	HarvestBatch       string     `json:"harvest_batch"`
	ProductionQuantity float64    `json:"production_quantity"`
	SensorID           *uint      `json:"sensor_id,omitempty"`
	SensorType         string     `json:"sensor_type,omitempty"`
	LastReadingTime    *time.Time `json:"last_reading_time,omitempty"`
	Temperature        *float64   `json:"temperature,omitempty"`
	Humidity           *float64   `json:"humidity,omitempty"`
	ConditionStatus    string     `json:"condition_status"`
	AlertLevel         string     `json:"alert_level"`
}

// AlertEvent is one out-of-range reading from a transport with an
// active shipment, not a per-asset state: a transport can raise several
// events inside one window.
type AlertEvent struct {
	TransportID  uint      `json:"transport_id"`
	VehicleType  string    `json:"vehicle_type"`
	DriverName   string    `json:"driver_name"`
	Destination  string    `json:"destination"`
	Temperature  *float64  `json:"temperature,omitempty"`
	Humidity     *float64  `json:"humidity,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	SensorType   string    `json:"sensor_type"`
	AlertLevel   string    `json:"alert_level"`
	AlertMessage string    `json:"alert_message"`
}

// TransportRollup aggregates a transport's readings over a trailing
// window. Averages are nil, never zero, when no qualifying values exist.
type TransportRollup struct {
	TransportID    uint      `json:"transport_id"`
	VehicleType    string    `json:"vehicle_type"`
	DriverName     string    `json:"driver_name"`
	Destination    string    `json:"destination"`
	ShipmentStatus string    `json:"shipment_status"`
	SensorCount    int       `json:"sensor_count"`
	AvgTemperature *float64  `json:"avg_temperature"`
	AvgHumidity    *float64  `json:"avg_humidity"`
	LastUpdate     time.Time `json:"last_update"`
	AlertCount     int       `json:"alert_count"`
}

// ReadingWithSensor is one raw history row joined with its sensor type.
type ReadingWithSensor struct {
	ReadingID      uint      `json:"reading_id"`
	SensorID       uint      `json:"sensor_id"`
	SensorType     string    `json:"sensor_type"`
	Timestamp      time.Time `json:"timestamp"`
	Temperature    *float64  `json:"temperature,omitempty"`
	Humidity       *float64  `json:"humidity,omitempty"`
	TravelDuration *float64  `json:"travel_duration,omitempty"`
	Coordinates    *string   `json:"coordinates,omitempty"`
}
