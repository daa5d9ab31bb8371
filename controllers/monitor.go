package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/FarHanZzzz/Supply-chain-main-sub000/config"
	"github.com/FarHanZzzz/Supply-chain-main-sub000/services"

	"github.com/gin-gonic/gin"
)

// A failing store must never look like "no alerts": every view handler
// answers 503 on a store error, never an empty 200.
func storeUnavailable(c *gin.Context, err error) {
	log.Printf("monitoring store error: %v", err)
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "monitoring store unavailable"})
}

// GetMonitoringView returns the live per-transport monitoring table.
func GetMonitoringView(c *gin.Context) {
	rows, err := services.MonitoringView(config.DB)
	if err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCriticalAlerts returns the currently-active critical alerts.
// Callers widen the window to see further back; there is no offset
// pagination.
func GetCriticalAlerts(c *gin.Context) {
	windowHours, err := strconv.Atoi(c.DefaultQuery("window_hours", "1"))
	if err != nil || windowHours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window_hours"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	alerts, err := services.ActiveCriticalAlerts(config.DB, time.Duration(windowHours)*time.Hour, limit)
	if err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GetTransportRollups returns the trailing-24h per-transport statistics.
func GetTransportRollups(c *gin.Context) {
	rollups, err := services.ActiveTransportRollups(config.DB, services.DefaultRollupWindow)
	if err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, rollups)
}

// GetSensorHistory returns raw readings for one transport's sensors,
// newest first. An unknown transport yields an empty list.
func GetSensorHistory(c *gin.Context) {
	transportID, err := strconv.ParseUint(c.Param("transport_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transport_id"})
		return
	}
	hours, err := strconv.Atoi(c.DefaultQuery("hours", "24"))
	if err != nil || hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours"})
		return
	}

	history, err := services.SensorHistory(config.DB, uint(transportID), hours)
	if err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// HealthCheck pings the store so load balancers see outages directly.
func HealthCheck(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil {
		storeUnavailable(c, err)
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		storeUnavailable(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
