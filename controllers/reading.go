package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/config"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type readingInput struct {
	SensorID       uint       `json:"sensor_id" binding:"required"`
	Timestamp      *time.Time `json:"timestamp"`
	Temperature    *float64   `json:"temperature"`
	Humidity       *float64   `json:"humidity"`
	TravelDuration *float64   `json:"travel_duration"`
	Coordinates    *string    `json:"coordinates"`
}

// ReceiveReading appends one sensor reading. Out-of-range values are
// stored and surfaced as-is; validation belongs to the device side, and
// a humidity of 500 should page someone, not be rejected.
func ReceiveReading(c *gin.Context) {
	var input readingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	reading := models.SensorReading{
		SensorID:       input.SensorID,
		Temperature:    input.Temperature,
		Humidity:       input.Humidity,
		TravelDuration: input.TravelDuration,
		Coordinates:    input.Coordinates,
	}
	// Timestamps are stored in UTC; device-supplied ones are normalized.
	if input.Timestamp != nil {
		reading.Timestamp = input.Timestamp.UTC()
	} else {
		reading.Timestamp = time.Now().UTC()
	}

	if err := config.DB.Create(&reading).Error; err != nil {
		storeUnavailable(c, err)
		return
	}

	tier := utils.ClassifyCondition(reading.Temperature, reading.Humidity)
	if tier != utils.TierNormal {
		notifyAlert(reading, tier)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Reading recorded",
		"reading":     reading,
		"alert_level": string(tier),
	})
}

// notifyAlert pushes an alert for an out-of-range reading to websocket
// clients and the redis channel. Only transports with an active shipment
// notify; broadcast failures are logged, never bounced to the device.
func notifyAlert(reading models.SensorReading, tier utils.ConditionTier) {
	ctx := context.Background()

	var sensor models.Sensor
	if err := config.DB.First(&sensor, reading.SensorID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("alert notify: load sensor %d: %v", reading.SensorID, err)
		}
		return
	}
	if sensor.TransportID == nil {
		return
	}

	var shipment models.Shipment
	err := config.DB.
		Where("transport_id = ? AND status IN ?", *sensor.TransportID, models.ActiveShipmentStatuses).
		Order("id desc").
		First(&shipment).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("alert notify: load shipment for transport %d: %v", *sensor.TransportID, err)
		}
		return
	}

	message := utils.AlertMessageFor(reading.Temperature, reading.Humidity)
	duplicate, err := config.CheckAlertDedup(ctx, *sensor.TransportID, message)
	if err != nil {
		log.Printf("alert notify: dedup check for transport %d: %v", *sensor.TransportID, err)
	}
	if duplicate {
		return
	}

	var transport models.Transport
	if err := config.DB.Preload("Driver").First(&transport, *sensor.TransportID).Error; err != nil {
		log.Printf("alert notify: load transport %d: %v", *sensor.TransportID, err)
		return
	}

	event := models.AlertEvent{
		TransportID:  transport.ID,
		VehicleType:  transport.VehicleType,
		Destination:  shipment.Destination,
		Temperature:  reading.Temperature,
		Humidity:     reading.Humidity,
		Timestamp:    reading.Timestamp,
		SensorType:   sensor.SensorType,
		AlertLevel:   string(tier),
		AlertMessage: message,
	}
	if transport.Driver != nil {
		event.DriverName = transport.Driver.Name
	}

	BroadcastAlert(event)

	payload, _ := json.Marshal(event)
	if err := config.PublishAlert(ctx, payload); err != nil {
		log.Printf("alert notify: redis publish for transport %d: %v", transport.ID, err)
	}
	if err := config.SetAlertDedup(ctx, transport.ID, message); err != nil {
		log.Printf("alert notify: dedup set for transport %d: %v", transport.ID, err)
	}
}

// UpdateReading edits a stored reading in place.
func UpdateReading(c *gin.Context) {
	id := c.Param("id")
	var reading models.SensorReading
	if err := config.DB.First(&reading, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
			return
		}
		storeUnavailable(c, err)
		return
	}

	var input readingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	reading.Temperature = input.Temperature
	reading.Humidity = input.Humidity
	reading.TravelDuration = input.TravelDuration
	reading.Coordinates = input.Coordinates
	if input.Timestamp != nil {
		reading.Timestamp = input.Timestamp.UTC()
	}

	if err := config.DB.Save(&reading).Error; err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reading updated successfully", "updated_reading": reading})
}

// DeleteReading removes a stored reading.
func DeleteReading(c *gin.Context) {
	id := c.Param("id")
	var reading models.SensorReading
	if err := config.DB.First(&reading, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
			return
		}
		storeUnavailable(c, err)
		return
	}

	if err := config.DB.Delete(&reading).Error; err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reading deleted successfully"})
}
