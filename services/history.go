package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
)

const DefaultHistoryHours = 24

// SensorHistory returns the raw readings for one transport's sensors
// over the trailing window, newest first. An unknown transport id yields
// an empty history, not an error.
func SensorHistory(db *gorm.DB, transportID uint, hours int) ([]models.ReadingWithSensor, error) {
	if hours <= 0 {
		hours = DefaultHistoryHours
	}

	var sensors []models.Sensor
	if err := db.Where("transport_id = ?", transportID).Find(&sensors).Error; err != nil {
		return nil, fmt.Errorf("sensor history: load sensors: %w", err)
	}
	if len(sensors) == 0 {
		return []models.ReadingWithSensor{}, nil
	}

	sensorType := make(map[uint]string, len(sensors))
	ids := make([]uint, 0, len(sensors))
	for _, s := range sensors {
		sensorType[s.ID] = s.SensorType
		ids = append(ids, s.ID)
	}

	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	var readings []models.SensorReading
	if err := db.Where("sensor_id IN ? AND timestamp >= ?", ids, cutoff).
		Order("timestamp desc, id desc").
		Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("sensor history: load readings: %w", err)
	}

	history := make([]models.ReadingWithSensor, 0, len(readings))
	for _, r := range readings {
		history = append(history, models.ReadingWithSensor{
			ReadingID:      r.ID,
			SensorID:       r.SensorID,
			SensorType:     sensorType[r.SensorID],
			Timestamp:      r.Timestamp,
			Temperature:    r.Temperature,
			Humidity:       r.Humidity,
			TravelDuration: r.TravelDuration,
			Coordinates:    r.Coordinates,
		})
	}
	return history, nil
}
