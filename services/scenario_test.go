package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/utils"
)

// One transport, one sensor, a morning of readings: the three views must
// agree with each other about what happened.
func TestMonitoringScenarioEndToEnd(t *testing.T) {
	transports := []models.Transport{
		{ID: 1, VehicleType: "Refrigerated Truck", Driver: &models.Driver{ID: 1, Name: "Rahim"}},
	}
	shipments := []models.Shipment{
		{ID: 1, TransportID: 1, Status: models.ShipmentInTransit, Destination: "Chittagong", HarvestBatch: "HB-7"},
	}
	sensors := []models.Sensor{transportSensor(1, 1, models.SensorTemperatureHumidity)}
	readings := []models.SensorReading{
		{ID: 1, SensorID: 1, Timestamp: at(8, 0), Temperature: f64(22), Humidity: f64(50)},
		{ID: 2, SensorID: 1, Timestamp: at(9, 0), Temperature: f64(27), Humidity: f64(50)},
	}
	now := at(9, 30)

	// Monitoring table: the 09:00 reading wins and the row is danger.
	rows := buildMonitoringRows(transports, shipments, sensors, readings)
	assert.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 27.0, *row.Temperature)
	assert.Equal(t, 50.0, *row.Humidity)
	assert.Equal(t, at(9, 0), *row.LastReadingTime)
	assert.Equal(t, string(utils.TierDanger), row.AlertLevel)
	assert.Equal(t, "Danger", row.ConditionStatus)
	assert.Equal(t, "Chittagong", row.Destination)
	assert.Equal(t, "Rahim", row.DriverName)

	// Alert list at 09:30 with a 2h window: only the 09:00 excursion.
	events := buildAlertEvents(transports, shipments, sensors, readings, now, 2*time.Hour, 10)
	assert.Len(t, events, 1)
	assert.Equal(t, at(9, 0), events[0].Timestamp)
	assert.Equal(t, "High Temperature", events[0].AlertMessage)
	assert.Equal(t, "Chittagong", events[0].Destination)

	// 24h rollup: both readings count, one of them alerted.
	rollups := aggregateRollups(transports, shipments, sensors, readings, now, 24*time.Hour)
	assert.Len(t, rollups, 1)
	rollup := rollups[0]
	assert.Equal(t, 1, rollup.SensorCount)
	assert.Equal(t, 24.5, *rollup.AvgTemperature)
	assert.Equal(t, 50.0, *rollup.AvgHumidity)
	assert.Equal(t, at(9, 0), rollup.LastUpdate)
	assert.Equal(t, 1, rollup.AlertCount)
}
