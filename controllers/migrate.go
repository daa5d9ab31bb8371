package controllers

import (
	"github.com/FarHanZzzz/Supply-chain-main-sub000/config"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/models"

	"gorm.io/gorm"
)

// MigrateModels runs the database migrations
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(
		&models.Driver{},
		&models.Transport{},
		&models.Warehouse{},
		&models.Shipment{},
		&models.Sensor{},
		&models.SensorReading{},
	)
}
