package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/utils"
)

const DefaultRollupWindow = 24 * time.Hour

// ActiveTransportRollups aggregates the trailing window per transport
// with an active shipment, "most on-fire first": alert count descending,
// then last update descending. Transports with no reading in the window
// are omitted entirely.
func ActiveTransportRollups(db *gorm.DB, window time.Duration) ([]models.TransportRollup, error) {
	if window <= 0 {
		window = DefaultRollupWindow
	}
	now := time.Now().UTC()

	var transports []models.Transport
	if err := db.Preload("Driver").Find(&transports).Error; err != nil {
		return nil, fmt.Errorf("transport rollups: load transports: %w", err)
	}
	var shipments []models.Shipment
	if err := db.Where("status IN ?", models.ActiveShipmentStatuses).Find(&shipments).Error; err != nil {
		return nil, fmt.Errorf("transport rollups: load shipments: %w", err)
	}
	var sensors []models.Sensor
	if err := db.Where("transport_id IS NOT NULL").Find(&sensors).Error; err != nil {
		return nil, fmt.Errorf("transport rollups: load sensors: %w", err)
	}

	var readings []models.SensorReading
	if len(sensors) > 0 {
		ids := make([]uint, 0, len(sensors))
		for _, s := range sensors {
			ids = append(ids, s.ID)
		}
		cutoff := now.Add(-window)
		if err := db.Where("sensor_id IN ? AND timestamp >= ?", ids, cutoff).Find(&readings).Error; err != nil {
			return nil, fmt.Errorf("transport rollups: load readings: %w", err)
		}
	}

	return aggregateRollups(transports, shipments, sensors, readings, now, window), nil
}

type rollupAccumulator struct {
	sensorIDs   map[uint]struct{}
	tempSum     float64
	tempCount   int
	humSum      float64
	humCount    int
	lastUpdate  time.Time
	alertCount  int
	readingSeen bool
}

func aggregateRollups(
	transports []models.Transport,
	shipments []models.Shipment,
	sensors []models.Sensor,
	readings []models.SensorReading,
	now time.Time,
	window time.Duration,
) []models.TransportRollup {
	activeShipment := activeShipmentByTransport(shipments)

	sensorByID := make(map[uint]models.Sensor, len(sensors))
	for _, s := range sensors {
		sensorByID[s.ID] = s
	}

	cutoff := now.Add(-window)
	accs := make(map[uint]*rollupAccumulator)
	for _, r := range readings {
		if r.Timestamp.Before(cutoff) || r.Timestamp.After(now) {
			continue
		}
		sensor, ok := sensorByID[r.SensorID]
		if !ok || sensor.TransportID == nil {
			continue
		}
		transportID := *sensor.TransportID
		if _, ok := activeShipment[transportID]; !ok {
			continue
		}

		acc := accs[transportID]
		if acc == nil {
			acc = &rollupAccumulator{sensorIDs: make(map[uint]struct{})}
			accs[transportID] = acc
		}
		acc.readingSeen = true
		acc.sensorIDs[r.SensorID] = struct{}{}
		// Means skip absent fields per reading; a nil temperature must
		// not drag the average toward zero.
		if r.Temperature != nil {
			acc.tempSum += *r.Temperature
			acc.tempCount++
		}
		if r.Humidity != nil {
			acc.humSum += *r.Humidity
			acc.humCount++
		}
		if r.Timestamp.After(acc.lastUpdate) {
			acc.lastUpdate = r.Timestamp
		}
		if utils.ClassifyCondition(r.Temperature, r.Humidity) != utils.TierNormal {
			acc.alertCount++
		}
	}

	rollups := make([]models.TransportRollup, 0, len(accs))
	for _, t := range transports {
		acc, ok := accs[t.ID]
		if !ok || !acc.readingSeen {
			continue
		}
		shipment := activeShipment[t.ID]

		rollup := models.TransportRollup{
			TransportID:    t.ID,
			VehicleType:    t.VehicleType,
			Destination:    shipment.Destination,
			ShipmentStatus: shipment.Status,
			SensorCount:    len(acc.sensorIDs),
			LastUpdate:     acc.lastUpdate,
			AlertCount:     acc.alertCount,
		}
		if t.Driver != nil {
			rollup.DriverName = t.Driver.Name
		}
		if acc.tempCount > 0 {
			avg := acc.tempSum / float64(acc.tempCount)
			rollup.AvgTemperature = &avg
		}
		if acc.humCount > 0 {
			avg := acc.humSum / float64(acc.humCount)
			rollup.AvgHumidity = &avg
		}
		rollups = append(rollups, rollup)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		if rollups[i].AlertCount != rollups[j].AlertCount {
			return rollups[i].AlertCount > rollups[j].AlertCount
		}
		return rollups[i].LastUpdate.After(rollups[j].LastUpdate)
	})

	return rollups
}
