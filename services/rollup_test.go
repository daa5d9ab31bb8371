package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
)

func TestAggregateRollupsNullSafeMeans(t *testing.T) {
	now := at(12, 0)
	transports := []models.Transport{{ID: 1, VehicleType: "Truck"}}
	shipments := []models.Shipment{activeShipmentFor(1, 1, "Dhaka")}
	sensors := []models.Sensor{transportSensor(1, 1, models.SensorTemperatureHumidity)}
	// Three readings, humidity always present, temperature only once.
	readings := []models.SensorReading{
		{ID: 1, SensorID: 1, Timestamp: at(9, 0), Humidity: f64(60)},
		{ID: 2, SensorID: 1, Timestamp: at(10, 0), Humidity: f64(50)},
		{ID: 3, SensorID: 1, Timestamp: at(11, 0), Temperature: f64(18), Humidity: f64(40)},
	}

	rollups := aggregateRollups(transports, shipments, sensors, readings, now, 24*time.Hour)
	assert.Len(t, rollups, 1)
	r := rollups[0]

	// The mean comes from the single present value, not zero-padded.
	assert.NotNil(t, r.AvgTemperature)
	assert.Equal(t, 18.0, *r.AvgTemperature)
	assert.Equal(t, 50.0, *r.AvgHumidity)
	assert.Equal(t, at(11, 0), r.LastUpdate)
}

func TestAggregateRollupsNilMeanWhenNoValues(t *testing.T) {
	now := at(12, 0)
	transports := []models.Transport{{ID: 1, VehicleType: "Truck"}}
	shipments := []models.Shipment{activeShipmentFor(1, 1, "Dhaka")}
	sensors := []models.Sensor{transportSensor(1, 1, models.SensorHumidity)}
	readings := []models.SensorReading{
		{ID: 1, SensorID: 1, Timestamp: at(11, 0), Humidity: f64(55)},
	}

	rollups := aggregateRollups(transports, shipments, sensors, readings, now, 24*time.Hour)
	assert.Len(t, rollups, 1)
	// No temperature values in the window: nil, never a fabricated 0.
	assert.Nil(t, rollups[0].AvgTemperature)
	assert.Equal(t, 55.0, *rollups[0].AvgHumidity)
}

func TestAggregateRollupsCountsAndGating(t *testing.T) {
	now := at(12, 0)
	transports := []models.Transport{
		{ID: 1, VehicleType: "Truck", Driver: &models.Driver{Name: "Rahim"}},
		{ID: 2, VehicleType: "Van"},
		{ID: 3, VehicleType: "Truck"},
	}
	shipments := []models.Shipment{
		activeShipmentFor(1, 1, "Dhaka"),
		activeShipmentFor(2, 3, "Khulna"),
	}
	sensors := []models.Sensor{
		transportSensor(1, 1, models.SensorTemperature),
		transportSensor(2, 1, models.SensorHumidity),
		transportSensor(3, 2, models.SensorTemperatureHumidity),
		transportSensor(4, 3, models.SensorTemperatureHumidity),
	}
	readings := []models.SensorReading{
		{ID: 1, SensorID: 1, Timestamp: at(9, 0), Temperature: f64(30)},  // alert
		{ID: 2, SensorID: 2, Timestamp: at(10, 0), Humidity: f64(50)},
		{ID: 3, SensorID: 3, Timestamp: at(10, 0), Temperature: f64(30)}, // transport 2: no active shipment
		// Transport 3 has a sensor but no readings in window: omitted.
		{ID: 4, SensorID: 4, Timestamp: now.Add(-25 * time.Hour), Temperature: f64(30)},
	}

	rollups := aggregateRollups(transports, shipments, sensors, readings, now, 24*time.Hour)
	assert.Len(t, rollups, 1)
	r := rollups[0]
	assert.Equal(t, uint(1), r.TransportID)
	assert.Equal(t, "Rahim", r.DriverName)
	assert.Equal(t, "Dhaka", r.Destination)
	assert.Equal(t, models.ShipmentInTransit, r.ShipmentStatus)
	assert.Equal(t, 2, r.SensorCount)
	assert.Equal(t, 1, r.AlertCount)
}

func TestAggregateRollupsOrdering(t *testing.T) {
	now := at(12, 0)
	transports := []models.Transport{
		{ID: 1, VehicleType: "Truck"},
		{ID: 2, VehicleType: "Truck"},
		{ID: 3, VehicleType: "Truck"},
	}
	shipments := []models.Shipment{
		activeShipmentFor(1, 1, "Dhaka"),
		activeShipmentFor(2, 2, "Khulna"),
		activeShipmentFor(3, 3, "Sylhet"),
	}
	sensors := []models.Sensor{
		transportSensor(1, 1, models.SensorTemperatureHumidity),
		transportSensor(2, 2, models.SensorTemperatureHumidity),
		transportSensor(3, 3, models.SensorTemperatureHumidity),
	}
	readings := []models.SensorReading{
		// Transport 1: one alert, older update.
		{ID: 1, SensorID: 1, Timestamp: at(9, 0), Temperature: f64(30)},
		// Transport 2: two alerts.
		{ID: 2, SensorID: 2, Timestamp: at(8, 0), Temperature: f64(30)},
		{ID: 3, SensorID: 2, Timestamp: at(8, 30), Temperature: f64(-2)},
		// Transport 3: one alert, newer update than transport 1.
		{ID: 4, SensorID: 3, Timestamp: at(11, 0), Humidity: f64(90)},
	}

	rollups := aggregateRollups(transports, shipments, sensors, readings, now, 24*time.Hour)
	assert.Len(t, rollups, 3)
	// Most on-fire first: alert count desc, then last update desc.
	assert.Equal(t, uint(2), rollups[0].TransportID)
	assert.Equal(t, uint(3), rollups[1].TransportID)
	assert.Equal(t, uint(1), rollups[2].TransportID)
}
