// Package services builds the derived monitoring views. Each view is a
// pure function of the store contents at call time: the exported entry
// points fetch one snapshot of each table and hand the slices to an
// unexported builder, so the join and ordering logic is testable without
// a database.
package services

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/utils"
)

// MonitoringView returns one row per transport for the live monitoring
// table, most severe first. Transports without readings or without an
// active shipment are still listed; rows are never dropped for lack of
// data.
func MonitoringView(db *gorm.DB) ([]models.MonitoringRow, error) {
	var transports []models.Transport
	if err := db.Preload("Driver").Find(&transports).Error; err != nil {
		return nil, fmt.Errorf("monitoring view: load transports: %w", err)
	}

	var shipments []models.Shipment
	if err := db.Where("status IN ?", models.ActiveShipmentStatuses).Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("monitoring view: load shipments: %w", err)
	}

	var sensors []models.Sensor
	if err := db.Where("transport_id IS NOT NULL").Find(&sensors).Error; err != nil {
		return nil, fmt.Errorf("monitoring view: load sensors: %w", err)
	}

	readings, err := readingsForSensors(db, sensors)
	if err != nil {
		return nil, fmt.Errorf("monitoring view: load readings: %w", err)
	}

	return buildMonitoringRows(transports, shipments, sensors, readings), nil
}

func readingsForSensors(db *gorm.DB, sensors []models.Sensor) ([]models.SensorReading, error) {
	if len(sensors) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(sensors))
	for _, s := range sensors {
		ids = append(ids, s.ID)
	}
	var readings []models.SensorReading
	if err := db.Where("sensor_id IN ?", ids).Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

// activeShipmentByTransport picks the most recent active shipment per
// transport, highest shipment id winning. A transport should carry at
// most one active shipment, but the view must not fall over when that
// invariant is violated upstream.
func activeShipmentByTransport(shipments []models.Shipment) map[uint]models.Shipment {
	byTransport := make(map[uint]models.Shipment)
	for _, s := range shipments {
		if !s.IsActive() {
			continue
		}
		cur, ok := byTransport[s.TransportID]
		if !ok || s.ID > cur.ID {
			byTransport[s.TransportID] = s
		}
	}
	return byTransport
}

func buildMonitoringRows(
	transports []models.Transport,
	shipments []models.Shipment,
	sensors []models.Sensor,
	readings []models.SensorReading,
) []models.MonitoringRow {
	activeShipment := activeShipmentByTransport(shipments)

	sensorByID := make(map[uint]models.Sensor, len(sensors))
	sensorsByTransport := make(map[uint][]models.Sensor)
	for _, s := range sensors {
		sensorByID[s.ID] = s
		if s.TransportID != nil {
			sensorsByTransport[*s.TransportID] = append(sensorsByTransport[*s.TransportID], s)
		}
	}

	readingsBySensor := make(map[uint][]models.SensorReading)
	for _, r := range readings {
		readingsBySensor[r.SensorID] = append(readingsBySensor[r.SensorID], r)
	}

	rows := make([]models.MonitoringRow, 0, len(transports))
	for _, t := range transports {
		row := models.MonitoringRow{
			TransportID: t.ID,
			VehicleType: t.VehicleType,
		}
		if t.Driver != nil {
			row.DriverName = t.Driver.Name
		}
		if sh, ok := activeShipment[t.ID]; ok {
			row.Destination = sh.Destination
			row.ShipmentStatus = sh.Status
			row.HarvestBatch = sh.HarvestBatch
			row.ProductionQuantity = sh.ProductionQuantity
		}

		// One row per transport: the winning reading is the most recent
		// across all of its sensors, not per sensor.
		var win *models.SensorReading
		for _, s := range sensorsByTransport[t.ID] {
			r := utils.LatestReading(readingsBySensor[s.ID])
			if r != nil && (win == nil || utils.NewerReading(*r, *win)) {
				win = r
			}
		}

		tier := utils.TierNormal
		if win != nil {
			sensorID := win.SensorID
			ts := win.Timestamp
			row.SensorID = &sensorID
			row.SensorType = sensorByID[win.SensorID].SensorType
			row.LastReadingTime = &ts
			row.Temperature = win.Temperature
			row.Humidity = win.Humidity
			tier = utils.ClassifyCondition(win.Temperature, win.Humidity)
		}
		row.AlertLevel = string(tier)
		row.ConditionStatus = tier.Label()
		rows = append(rows, row)
	}

	// Operators scan top to bottom: danger first, then warning, then
	// normal, most recent reading first within a tier. Rows with no
	// reading sort to the bottom of their tier.
	sort.SliceStable(rows, func(i, j int) bool {
		ri := utils.ConditionTier(rows[i].AlertLevel).Rank()
		rj := utils.ConditionTier(rows[j].AlertLevel).Rank()
		if ri != rj {
			return ri > rj
		}
		ti, tj := rows[i].LastReadingTime, rows[j].LastReadingTime
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})

	return rows
}
