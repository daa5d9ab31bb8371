package models

import "time"

// Shipment status values. Status only moves along
// pending -> in transit -> delivered (or -> cancelled); the CRUD layer
// owns that transition, the monitoring views only consume it.
const (
	ShipmentPending   = "pending"
	ShipmentInTransit = "in transit"
	ShipmentDelivered = "delivered"
	ShipmentCancelled = "cancelled"
)

// ActiveShipmentStatuses gates every alert and rollup view: a parked
// transport with no pending or in-transit shipment must not page anyone.
var ActiveShipmentStatuses = []string{ShipmentPending, ShipmentInTransit}

type Shipment struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	TransportID        uint       `json:"transport_id" gorm:"index;not null"`
	Destination        string     `json:"destination"`
	Status             string     `json:"status" gorm:"default:pending"`
	HarvestBatch       string     `json:"harvest_batch"`
	ProductionQuantity float64    `json:"production_quantity"`
	DepartureTime      *time.Time `json:"departure_time,omitempty"`
}

// IsActive reports whether the shipment gates its transport into the
// alert and rollup views.
func (s Shipment) IsActive() bool {
	return s.Status == ShipmentPending || s.Status == ShipmentInTransit
}
