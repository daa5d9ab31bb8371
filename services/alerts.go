package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/utils"
)

const (
	DefaultAlertWindow = time.Hour
	DefaultAlertLimit  = 10
)

// ActiveCriticalAlerts returns every warning or danger reading inside
// the trailing window whose transport has an active shipment, most
// recent first, capped at limit. This is per reading, not per asset:
// it deliberately ignores "latest per sensor" so a transport drifting
// in and out of range shows each excursion.
func ActiveCriticalAlerts(db *gorm.DB, window time.Duration, limit int) ([]models.AlertEvent, error) {
	if window <= 0 {
		window = DefaultAlertWindow
	}
	if limit <= 0 {
		limit = DefaultAlertLimit
	}
	now := time.Now().UTC()

	var transports []models.Transport
	if err := db.Preload("Driver").Find(&transports).Error; err != nil {
		return nil, fmt.Errorf("critical alerts: load transports: %w", err)
	}
	var shipments []models.Shipment
	if err := db.Where("status IN ?", models.ActiveShipmentStatuses).Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("critical alerts: load shipments: %w", err)
	}
	var sensors []models.Sensor
	if err := db.Where("transport_id IS NOT NULL").Find(&sensors).Error; err != nil {
		return nil, fmt.Errorf("critical alerts: load sensors: %w", err)
	}

	var readings []models.SensorReading
	if len(sensors) > 0 {
		ids := make([]uint, 0, len(sensors))
		for _, s := range sensors {
			ids = append(ids, s.ID)
		}
		cutoff := now.Add(-window)
		if err := db.Where("sensor_id IN ? AND timestamp >= ?", ids, cutoff).Find(&readings).Error; err != nil {
			return nil, fmt.Errorf("critical alerts: load readings: %w", err)
		}
	}

	return buildAlertEvents(transports, shipments, sensors, readings, now, window, limit), nil
}

func buildAlertEvents(
	transports []models.Transport,
	shipments []models.Shipment,
	sensors []models.Sensor,
	readings []models.SensorReading,
	now time.Time,
	window time.Duration,
	limit int,
) []models.AlertEvent {
	activeShipment := activeShipmentByTransport(shipments)

	transportByID := make(map[uint]models.Transport, len(transports))
	for _, t := range transports {
		transportByID[t.ID] = t
	}
	sensorByID := make(map[uint]models.Sensor, len(sensors))
	for _, s := range sensors {
		sensorByID[s.ID] = s
	}

	type candidate struct {
		reading models.SensorReading
		event   models.AlertEvent
	}

	cutoff := now.Add(-window)
	var candidates []candidate
	for _, r := range readings {
		// Window is [now-window, now], inclusive at the old edge.
		if r.Timestamp.Before(cutoff) || r.Timestamp.After(now) {
			continue
		}
		sensor, ok := sensorByID[r.SensorID]
		if !ok || sensor.TransportID == nil {
			continue
		}
		shipment, ok := activeShipment[*sensor.TransportID]
		if !ok {
			continue
		}
		tier := utils.ClassifyCondition(r.Temperature, r.Humidity)
		if tier == utils.TierNormal {
			continue
		}

		transport := transportByID[*sensor.TransportID]
		event := models.AlertEvent{
			TransportID:  transport.ID,
			VehicleType:  transport.VehicleType,
			Destination:  shipment.Destination,
			Temperature:  r.Temperature,
			Humidity:     r.Humidity,
			Timestamp:    r.Timestamp,
			SensorType:   sensor.SensorType,
			AlertLevel:   string(tier),
			AlertMessage: utils.AlertMessageFor(r.Temperature, r.Humidity),
		}
		if transport.Driver != nil {
			event.DriverName = transport.Driver.Name
		}
		candidates = append(candidates, candidate{reading: r, event: event})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return utils.NewerReading(candidates[i].reading, candidates[j].reading)
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	events := make([]models.AlertEvent, 0, len(candidates))
	for _, c := range candidates {
		events = append(events, c.event)
	}
	return events
}
